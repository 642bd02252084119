package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

// maxDocumentBytes bounds the accepted size of a content document body.
const maxDocumentBytes = 1 << 20

// ContentHandler serves the site copy and settings documents.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a ContentHandler with the given service.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) get(w http.ResponseWriter, r *http.Request, kind model.ContentKind) {
	doc, err := h.contentService.Latest(r.Context(), kind)
	if errors.Is(err, repository.ErrNotFound) {
		// Nothing written yet: an empty document, not an error.
		respondJSON(w, http.StatusOK, map[string]any{"data": map[string]any{}})
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *ContentHandler) update(w http.ResponseWriter, r *http.Request, kind model.ContentKind) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_body")
		return
	}

	doc, err := h.contentService.Update(r.Context(), kind, json.RawMessage(body))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// GetContent handles GET /api/content (public).
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, model.KindPortfolioContent)
}

// UpdateContent handles PUT /api/content (admin).
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, model.KindPortfolioContent)
}

// GetSettings handles GET /api/settings (public).
func (h *ContentHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, model.KindSiteSettings)
}

// UpdateSettings handles PUT /api/settings (admin).
func (h *ContentHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, model.KindSiteSettings)
}
