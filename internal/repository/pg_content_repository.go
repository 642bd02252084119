package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository defines the persistence interface for content documents.
type ContentRepository interface {
	// Latest returns the most recently updated document of a kind, or
	// ErrNotFound when none has been written yet.
	Latest(ctx context.Context, kind model.ContentKind) (*model.ContentDocument, error)
	Save(ctx context.Context, doc *model.ContentDocument) error
}

// PgContentRepository is the PostgreSQL implementation of ContentRepository.
type PgContentRepository struct {
	pool *pgxpool.Pool
}

// NewPgContentRepository creates a PgContentRepository backed by the given pool.
func NewPgContentRepository(pool *pgxpool.Pool) *PgContentRepository {
	return &PgContentRepository{pool: pool}
}

var _ ContentRepository = (*PgContentRepository)(nil)

// Latest returns the newest document of the given kind.
func (r *PgContentRepository) Latest(ctx context.Context, kind model.ContentKind) (*model.ContentDocument, error) {
	var d model.ContentDocument
	err := r.pool.QueryRow(ctx,
		`SELECT id, kind, data, created_at, updated_at
		 FROM content_documents WHERE kind = $1
		 ORDER BY updated_at DESC LIMIT 1`, kind,
	).Scan(&d.ID, &d.Kind, &d.Data, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Save appends a new document row. The latest row wins; older rows stay put.
func (r *PgContentRepository) Save(ctx context.Context, doc *model.ContentDocument) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO content_documents (kind, data)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		doc.Kind, doc.Data,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
}
