package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// minFeaturedCount is how many featured entries the public feed needs before
// it activates.
const minFeaturedCount = 5

// FeaturedCheck reports whether the public feedback feed has enough entries.
type FeaturedCheck struct {
	HasEnough bool  `json:"hasEnough"`
	Count     int64 `json:"count"`
}

// FeedbackService defines the business logic for visitor feedback.
type FeedbackService interface {
	// Submit stores a new feedback entry with both flags cleared.
	Submit(ctx context.Context, fb *model.Feedback) error

	// List returns every feedback entry for the admin console, newest first.
	List(ctx context.Context) ([]*model.Feedback, error)

	// Featured returns publicly visible entries (featured and not disabled).
	Featured(ctx context.Context) ([]*model.Feedback, error)

	// CheckFeatured reports whether the featured count meets minFeaturedCount.
	CheckFeatured(ctx context.Context) (FeaturedCheck, error)

	// ToggleFeatured flips the featured flag and returns the updated entry.
	ToggleFeatured(ctx context.Context, id string) (*model.Feedback, error)

	// ToggleDisabled flips the disabled flag and returns the updated entry.
	ToggleDisabled(ctx context.Context, id string) (*model.Feedback, error)

	// Stats returns aggregate counts for the admin dashboard.
	Stats(ctx context.Context) (model.FeedbackStats, error)

	// Delete removes a feedback entry permanently.
	Delete(ctx context.Context, id string) error
}

type feedbackServiceImpl struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService backed by the given repository.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{repo: repo}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, fb *model.Feedback) error {
	fb.Featured = false
	fb.Disabled = false
	return s.repo.Save(ctx, fb)
}

func (s *feedbackServiceImpl) List(ctx context.Context) ([]*model.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *feedbackServiceImpl) Featured(ctx context.Context) ([]*model.Feedback, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *feedbackServiceImpl) CheckFeatured(ctx context.Context) (FeaturedCheck, error) {
	count, err := s.repo.CountFeatured(ctx)
	if err != nil {
		return FeaturedCheck{}, err
	}
	return FeaturedCheck{HasEnough: count >= minFeaturedCount, Count: count}, nil
}

func (s *feedbackServiceImpl) ToggleFeatured(ctx context.Context, id string) (*model.Feedback, error) {
	return s.repo.ToggleFeatured(ctx, id)
}

func (s *feedbackServiceImpl) ToggleDisabled(ctx context.Context, id string) (*model.Feedback, error) {
	return s.repo.ToggleDisabled(ctx, id)
}

func (s *feedbackServiceImpl) Stats(ctx context.Context) (model.FeedbackStats, error) {
	return s.repo.Stats(ctx)
}

func (s *feedbackServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
