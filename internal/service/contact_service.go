package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. The msg.ID and timestamps will be
	// populated by the implementation; the message always starts unread.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages according to the given options, unread
	// before read, newest first within each group.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// SetRead updates the read flag and returns the updated message.
	SetRead(ctx context.Context, id string, read bool) (*model.ContactMessage, error)

	// Delete removes a message permanently.
	Delete(ctx context.Context, id string) error
}
