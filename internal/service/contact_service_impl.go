package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact message. The read flag is forced to false
// regardless of what the caller set.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Read = false
	return s.repo.Save(ctx, msg)
}

// List returns contact messages according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	return s.repo.List(ctx, opts)
}

// SetRead updates the read flag of a contact message.
func (s *contactServiceImpl) SetRead(ctx context.Context, id string, read bool) (*model.ContactMessage, error) {
	return s.repo.SetRead(ctx, id, read)
}

// Delete removes a contact message permanently.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
