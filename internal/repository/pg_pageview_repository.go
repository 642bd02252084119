package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PageViewRepository defines the persistence interface for page views.
type PageViewRepository interface {
	Save(ctx context.Context, view *model.PageView) error
	ListRecent(ctx context.Context, limit int) ([]*model.PageView, error)
	CountTotal(ctx context.Context) (int64, error)
	CountUniqueIPs(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

// PgPageViewRepository is the PostgreSQL implementation of PageViewRepository.
type PgPageViewRepository struct {
	pool *pgxpool.Pool
}

// NewPgPageViewRepository creates a PgPageViewRepository backed by the given pool.
func NewPgPageViewRepository(pool *pgxpool.Pool) *PgPageViewRepository {
	return &PgPageViewRepository{pool: pool}
}

var _ PageViewRepository = (*PgPageViewRepository)(nil)

// Save inserts a page view row.
func (r *PgPageViewRepository) Save(ctx context.Context, view *model.PageView) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO page_views (ip, user_agent)
		 VALUES ($1, NULLIF($2, ''))
		 RETURNING id, created_at`,
		view.IP, view.UserAgent,
	).Scan(&view.ID, &view.CreatedAt)
}

// ListRecent returns the newest page views, most recent first.
func (r *PgPageViewRepository) ListRecent(ctx context.Context, limit int) ([]*model.PageView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, ip, COALESCE(user_agent, ''), created_at
		 FROM page_views ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*model.PageView
	for rows.Next() {
		var v model.PageView
		if err := rows.Scan(&v.ID, &v.IP, &v.UserAgent, &v.CreatedAt); err != nil {
			return nil, err
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

// CountTotal returns the total number of recorded views.
func (r *PgPageViewRepository) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM page_views`).Scan(&n)
	return n, err
}

// CountUniqueIPs returns the number of distinct visitor IPs.
func (r *PgPageViewRepository) CountUniqueIPs(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT ip) FROM page_views`).Scan(&n)
	return n, err
}

// Delete removes a single page view row.
func (r *PgPageViewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM page_views WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
