package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// AnalyticsSummary bundles the recent views with the aggregate counters.
type AnalyticsSummary struct {
	Views []*model.PageView   `json:"views"`
	Stats model.PageViewStats `json:"stats"`
}

// AnalyticsService defines the page-view tracking and reporting logic.
type AnalyticsService interface {
	// Record appends a page view. An empty ip is stored as "unknown".
	Record(ctx context.Context, ip, userAgent string) error

	// Summary returns the recent views plus total and distinct-IP counts.
	// The three reads run concurrently; they are independent.
	Summary(ctx context.Context) (*AnalyticsSummary, error)

	// DeleteView removes a single recorded view.
	DeleteView(ctx context.Context, id string) error
}

// recentViewsLimit caps how many raw rows the summary carries.
const recentViewsLimit = 100

type analyticsServiceImpl struct {
	repo repository.PageViewRepository
}

// NewAnalyticsService creates an AnalyticsService backed by the given repository.
func NewAnalyticsService(repo repository.PageViewRepository) AnalyticsService {
	return &analyticsServiceImpl{repo: repo}
}

func (s *analyticsServiceImpl) Record(ctx context.Context, ip, userAgent string) error {
	if ip == "" {
		ip = "unknown"
	}
	view := &model.PageView{IP: ip, UserAgent: userAgent}
	return s.repo.Save(ctx, view)
}

func (s *analyticsServiceImpl) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	var summary AnalyticsSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		views, err := s.repo.ListRecent(gctx, recentViewsLimit)
		if err != nil {
			return err
		}
		summary.Views = views
		return nil
	})
	g.Go(func() error {
		total, err := s.repo.CountTotal(gctx)
		if err != nil {
			return err
		}
		summary.Stats.TotalViews = total
		return nil
	})
	g.Go(func() error {
		unique, err := s.repo.CountUniqueIPs(gctx)
		if err != nil {
			return err
		}
		summary.Stats.UniqueVisitors = unique
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if summary.Views == nil {
		summary.Views = []*model.PageView{}
	}
	return &summary, nil
}

func (s *analyticsServiceImpl) DeleteView(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
