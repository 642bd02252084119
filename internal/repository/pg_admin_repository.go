package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository defines the persistence interface for the admin account.
// It is defined here (in repository) to avoid an import cycle with service.
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	// Upsert inserts the admin or, when the email already exists, overwrites
	// the mutable fields. Used by the seed command only.
	Upsert(ctx context.Context, admin *model.Admin) error
	Update(ctx context.Context, admin *model.Admin) error
}

// PgAdminRepository is the PostgreSQL implementation of AdminRepository.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepository creates a PgAdminRepository backed by the given pool.
func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

const adminSelectCols = `id, name, email, password_hash, COALESCE(avatar_url, ''), COALESCE(bio, ''), created_at, updated_at`

func scanAdmin(scan func(...any) error) (*model.Admin, error) {
	var a model.Admin
	err := scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.AvatarURL, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID returns the admin with the given id.
func (r *PgAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+adminSelectCols+` FROM admins WHERE id = $1`, id)
	return scanAdmin(row.Scan)
}

// FindByEmail returns the admin with the given email.
func (r *PgAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+adminSelectCols+` FROM admins WHERE email = $1`, email)
	return scanAdmin(row.Scan)
}

// Upsert inserts the admin keyed on email. Running it twice with the same
// email leaves exactly one row carrying the latest provided fields.
func (r *PgAdminRepository) Upsert(ctx context.Context, admin *model.Admin) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash, avatar_url, bio)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name,
		   password_hash = EXCLUDED.password_hash,
		   avatar_url = EXCLUDED.avatar_url,
		   bio = EXCLUDED.bio,
		   updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		admin.Name, admin.Email, admin.PasswordHash, admin.AvatarURL, admin.Bio,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

// Update overwrites the admin's mutable profile fields.
func (r *PgAdminRepository) Update(ctx context.Context, admin *model.Admin) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE admins
		 SET name=$1, email=$2, password_hash=$3, avatar_url=NULLIF($4, ''), bio=NULLIF($5, ''), updated_at=NOW()
		 WHERE id=$6`,
		admin.Name, admin.Email, admin.PasswordHash, admin.AvatarURL, admin.Bio, admin.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
