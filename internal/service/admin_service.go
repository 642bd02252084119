package service

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/pkg/auth"
)

// ErrInvalidCredentials is returned when login email or password is wrong.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminProfilePatch holds the updatable profile fields. nil fields are left
// unchanged. A non-nil Password is re-hashed before storage.
type AdminProfilePatch struct {
	Name      *string
	Email     *string
	AvatarURL *string
	Bio       *string
	Password  *string
}

// AdminService defines authentication and profile management for the admin.
type AdminService interface {
	// Authenticate verifies the email/password pair and returns the admin.
	Authenticate(ctx context.Context, email, password string) (*model.Admin, error)

	GetByID(ctx context.Context, id string) (*model.Admin, error)

	// UpdateProfile applies the non-nil patch fields and returns the result.
	UpdateProfile(ctx context.Context, id string, patch AdminProfilePatch) (*model.Admin, error)
}

type adminServiceImpl struct {
	repo repository.AdminRepository
}

// NewAdminService creates an AdminService backed by the given repository.
func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminServiceImpl{repo: repo}
}

func (s *adminServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

func (s *adminServiceImpl) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *adminServiceImpl) UpdateProfile(ctx context.Context, id string, patch AdminProfilePatch) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		admin.Name = *patch.Name
	}
	if patch.Email != nil {
		admin.Email = *patch.Email
	}
	if patch.AvatarURL != nil {
		admin.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		admin.Bio = *patch.Bio
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, auth.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
