package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// TechnologyService defines the business logic for the skills/stack entries.
type TechnologyService interface {
	Create(ctx context.Context, tech *model.Technology) error
	// List returns all technologies sorted by category, sort order, then name.
	List(ctx context.Context) ([]*model.Technology, error)
	GetByID(ctx context.Context, id string) (*model.Technology, error)
	Update(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error)
	Delete(ctx context.Context, id string) error
}

type technologyServiceImpl struct {
	repo repository.TechnologyRepository
}

// NewTechnologyService creates a TechnologyService backed by the given repository.
func NewTechnologyService(repo repository.TechnologyRepository) TechnologyService {
	return &technologyServiceImpl{repo: repo}
}

func (s *technologyServiceImpl) Create(ctx context.Context, tech *model.Technology) error {
	return s.repo.Create(ctx, tech)
}

func (s *technologyServiceImpl) List(ctx context.Context) ([]*model.Technology, error) {
	return s.repo.List(ctx)
}

func (s *technologyServiceImpl) GetByID(ctx context.Context, id string) (*model.Technology, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *technologyServiceImpl) Update(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *technologyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
