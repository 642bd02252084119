package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/reqcache"
	"github.com/folio/backend/internal/repository"
)

// ErrInvalidDocument is returned when an update body is not a JSON object.
var ErrInvalidDocument = errors.New("content: document must be a JSON object")

// ContentService manages the singleton-like site copy and settings documents.
// Reads of the latest document are memoized per request, since page rendering
// tends to ask for them more than once within one request.
type ContentService interface {
	// Latest returns the canonical (most recently updated) document of a
	// kind, or repository.ErrNotFound when none exists yet.
	Latest(ctx context.Context, kind model.ContentKind) (*model.ContentDocument, error)

	// Update appends a new document revision; the latest revision wins.
	Update(ctx context.Context, kind model.ContentKind, data json.RawMessage) (*model.ContentDocument, error)
}

type contentServiceImpl struct {
	repo repository.ContentRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo}
}

func (s *contentServiceImpl) Latest(ctx context.Context, kind model.ContentKind) (*model.ContentDocument, error) {
	return reqcache.Do(ctx, "content:"+string(kind), func() (*model.ContentDocument, error) {
		return s.repo.Latest(ctx, kind)
	})
}

func (s *contentServiceImpl) Update(ctx context.Context, kind model.ContentKind, data json.RawMessage) (*model.ContentDocument, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrInvalidDocument
	}

	doc := &model.ContentDocument{Kind: kind, Data: data}
	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
