package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TechnologyRepository defines the persistence interface for technologies.
type TechnologyRepository interface {
	Create(ctx context.Context, tech *model.Technology) error
	List(ctx context.Context) ([]*model.Technology, error)
	GetByID(ctx context.Context, id string) (*model.Technology, error)
	Update(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error)
	Delete(ctx context.Context, id string) error
}

// PgTechnologyRepository is the PostgreSQL implementation of TechnologyRepository.
type PgTechnologyRepository struct {
	pool *pgxpool.Pool
}

// NewPgTechnologyRepository creates a PgTechnologyRepository backed by the given pool.
func NewPgTechnologyRepository(pool *pgxpool.Pool) *PgTechnologyRepository {
	return &PgTechnologyRepository{pool: pool}
}

var _ TechnologyRepository = (*PgTechnologyRepository)(nil)

const technologySelectCols = `id, name, COALESCE(icon, ''), category, sort_order, created_at, updated_at`

func scanTechnology(scan func(...any) error) (*model.Technology, error) {
	var t model.Technology
	err := scan(&t.ID, &t.Name, &t.Icon, &t.Category, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new technology row.
func (r *PgTechnologyRepository) Create(ctx context.Context, tech *model.Technology) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO technologies (name, icon, category, sort_order)
		 VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING id, created_at, updated_at`,
		tech.Name, tech.Icon, tech.Category, tech.SortOrder,
	).Scan(&tech.ID, &tech.CreatedAt, &tech.UpdatedAt)
}

// List returns all technologies ordered by category, sort_order, then name.
func (r *PgTechnologyRepository) List(ctx context.Context) ([]*model.Technology, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+technologySelectCols+` FROM technologies
		 ORDER BY category ASC, sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techs []*model.Technology
	for rows.Next() {
		t, err := scanTechnology(rows.Scan)
		if err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

// GetByID returns the technology with the given id.
func (r *PgTechnologyRepository) GetByID(ctx context.Context, id string) (*model.Technology, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+technologySelectCols+` FROM technologies WHERE id = $1`, id)
	return scanTechnology(row.Scan)
}

// Update applies the non-nil fields of patch and returns the updated row.
func (r *PgTechnologyRepository) Update(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE technologies SET
		   name = COALESCE($1, name),
		   icon = CASE WHEN $2::text IS NULL THEN icon ELSE NULLIF($2, '') END,
		   category = COALESCE($3, category),
		   sort_order = COALESCE($4, sort_order),
		   updated_at = NOW()
		 WHERE id = $5
		 RETURNING `+technologySelectCols,
		patch.Name, patch.Icon, patch.Category, patch.SortOrder, id)
	return scanTechnology(row.Scan)
}

// Delete removes a technology permanently.
func (r *PgTechnologyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM technologies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
