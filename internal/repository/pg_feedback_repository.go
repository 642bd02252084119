package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackRepository defines the persistence interface for feedback entries.
type FeedbackRepository interface {
	Save(ctx context.Context, fb *model.Feedback) error
	List(ctx context.Context) ([]*model.Feedback, error)
	ListFeatured(ctx context.Context) ([]*model.Feedback, error)
	GetByID(ctx context.Context, id string) (*model.Feedback, error)
	ToggleFeatured(ctx context.Context, id string) (*model.Feedback, error)
	ToggleDisabled(ctx context.Context, id string) (*model.Feedback, error)
	CountFeatured(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (model.FeedbackStats, error)
	Delete(ctx context.Context, id string) error
}

// PgFeedbackRepository is the PostgreSQL implementation of FeedbackRepository.
type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPgFeedbackRepository creates a PgFeedbackRepository backed by the given pool.
func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

var _ FeedbackRepository = (*PgFeedbackRepository)(nil)

const feedbackSelectCols = `id, content, featured, disabled, created_at, updated_at`

func scanFeedback(scan func(...any) error) (*model.Feedback, error) {
	var f model.Feedback
	err := scan(&f.ID, &f.Content, &f.Featured, &f.Disabled, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Save inserts a new feedback row.
func (r *PgFeedbackRepository) Save(ctx context.Context, fb *model.Feedback) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO feedback (content, featured, disabled)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		fb.Content, fb.Featured, fb.Disabled,
	).Scan(&fb.ID, &fb.CreatedAt, &fb.UpdatedAt)
}

func (r *PgFeedbackRepository) queryList(ctx context.Context, query string, args ...any) ([]*model.Feedback, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

// List returns all feedback, newest first.
func (r *PgFeedbackRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	return r.queryList(ctx,
		`SELECT `+feedbackSelectCols+` FROM feedback ORDER BY created_at DESC`)
}

// ListFeatured returns feedback with featured set and disabled unset, newest first.
func (r *PgFeedbackRepository) ListFeatured(ctx context.Context) ([]*model.Feedback, error) {
	return r.queryList(ctx,
		`SELECT `+feedbackSelectCols+` FROM feedback
		 WHERE featured AND NOT disabled ORDER BY created_at DESC`)
}

// GetByID returns the feedback entry with the given id.
func (r *PgFeedbackRepository) GetByID(ctx context.Context, id string) (*model.Feedback, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+feedbackSelectCols+` FROM feedback WHERE id = $1`, id)
	return scanFeedback(row.Scan)
}

// ToggleFeatured flips the featured flag in a single statement and returns the
// updated row, so concurrent toggles never lose an update.
func (r *PgFeedbackRepository) ToggleFeatured(ctx context.Context, id string) (*model.Feedback, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE feedback SET featured = NOT featured, updated_at = NOW()
		 WHERE id = $1 RETURNING `+feedbackSelectCols, id)
	return scanFeedback(row.Scan)
}

// ToggleDisabled flips the disabled flag and returns the updated row.
func (r *PgFeedbackRepository) ToggleDisabled(ctx context.Context, id string) (*model.Feedback, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE feedback SET disabled = NOT disabled, updated_at = NOW()
		 WHERE id = $1 RETURNING `+feedbackSelectCols, id)
	return scanFeedback(row.Scan)
}

// CountFeatured returns the number of publicly visible feedback entries.
func (r *PgFeedbackRepository) CountFeatured(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback WHERE featured AND NOT disabled`).Scan(&n)
	return n, err
}

// Stats returns aggregate counts in a single round trip.
func (r *PgFeedbackRepository) Stats(ctx context.Context) (model.FeedbackStats, error) {
	var s model.FeedbackStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE featured),
		        COUNT(*) FILTER (WHERE disabled)
		 FROM feedback`).Scan(&s.Total, &s.Featured, &s.Disabled)
	return s, err
}

// Delete removes a feedback entry permanently.
func (r *PgFeedbackRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
