package service

import (
	"context"
	"testing"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAdminRepository struct {
	findByIDFunc    func(ctx context.Context, id string) (*model.Admin, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.Admin, error)
	upsertFunc      func(ctx context.Context, admin *model.Admin) error
	updateFunc      func(ctx context.Context, admin *model.Admin) error
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepository) Upsert(ctx context.Context, admin *model.Admin) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, admin)
	}
	return nil
}

func (m *mockAdminRepository) Update(ctx context.Context, admin *model.Admin) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, admin)
	}
	return nil
}

// low cost keeps the test fast; the hash format is identical
const testBcryptCost = 4

func testAdmin(t *testing.T, password string) *model.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password, testBcryptCost)
	require.NoError(t, err)
	return &model.Admin{ID: "a1", Email: "admin@example.com", PasswordHash: hash}
}

func TestAdminService_Authenticate_Success(t *testing.T) {
	stored := testAdmin(t, "correct horse")
	mock := &mockAdminRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Admin, error) {
			return stored, nil
		},
	}
	svc := NewAdminService(mock)

	admin, err := svc.Authenticate(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.ID)
}

func TestAdminService_Authenticate_WrongPassword(t *testing.T) {
	stored := testAdmin(t, "correct horse")
	mock := &mockAdminRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Admin, error) {
			return stored, nil
		},
	}
	svc := NewAdminService(mock)

	_, err := svc.Authenticate(context.Background(), "admin@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_Authenticate_UnknownEmail(t *testing.T) {
	svc := NewAdminService(&mockAdminRepository{})

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	// Same error as a wrong password: callers cannot probe which emails exist.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_UpdateProfile_RehashesPassword(t *testing.T) {
	stored := testAdmin(t, "old password")
	oldHash := stored.PasswordHash

	var updated *model.Admin
	mock := &mockAdminRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Admin, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, admin *model.Admin) error {
			updated = admin
			return nil
		},
	}
	svc := NewAdminService(mock)

	newPassword := "new password"
	_, err := svc.UpdateProfile(context.Background(), "a1", AdminProfilePatch{Password: &newPassword})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NotEqual(t, oldHash, updated.PasswordHash)
	assert.True(t, auth.VerifyPassword(newPassword, updated.PasswordHash))
}

func TestAdminService_UpdateProfile_PartialPatch(t *testing.T) {
	stored := testAdmin(t, "pw")
	stored.Name = "Old Name"
	stored.Bio = "old bio"

	var updated *model.Admin
	mock := &mockAdminRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Admin, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, admin *model.Admin) error {
			updated = admin
			return nil
		},
	}
	svc := NewAdminService(mock)

	name := "New Name"
	_, err := svc.UpdateProfile(context.Background(), "a1", AdminProfilePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "old bio", updated.Bio)
}
