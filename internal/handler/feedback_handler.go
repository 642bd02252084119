package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxFeedbackLength = 2000

// FeedbackHandler handles visitor feedback and its admin curation.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler with the given service.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// submitFeedbackRequest is the body for POST /api/feedback.
type submitFeedbackRequest struct {
	Content string `json:"content"`
}

// Submit handles POST /api/feedback (public). New entries are neither
// featured nor disabled until the admin says so.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Content == "" {
		respondValidation(w, map[string]string{"content": "content is required"})
		return
	}
	if len([]rune(req.Content)) > maxFeedbackLength {
		respondValidation(w, map[string]string{"content": "content exceeds 2000 characters"})
		return
	}

	fb := &model.Feedback{Content: req.Content}
	if err := h.feedbackService.Submit(r.Context(), fb); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, fb)
}

// List handles GET /api/feedback (admin).
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*model.Feedback{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// Featured handles GET /api/feedback/featured (public). Served with no-store
// so admin toggles become visible immediately.
func (h *FeedbackHandler) Featured(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.Featured(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*model.Feedback{}
	}
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, entries)
}

// Check handles GET /api/feedback/featured/check (public). The public feed
// activates at five featured entries. This endpoint never fails outward: an
// internal error degrades to {hasEnough:false, count:0} so the page renders.
func (h *FeedbackHandler) Check(w http.ResponseWriter, r *http.Request) {
	check, err := h.feedbackService.CheckFeatured(r.Context())
	if err != nil {
		slog.Error("featured feedback check failed", "error", err)
		respondJSON(w, http.StatusOK, service.FeaturedCheck{HasEnough: false, Count: 0})
		return
	}
	respondJSON(w, http.StatusOK, check)
}

// ToggleFeatured handles PATCH /api/feedback/{id}/featured (admin).
func (h *FeedbackHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	fb, err := h.feedbackService.ToggleFeatured(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, fb)
}

// ToggleDisabled handles PATCH /api/feedback/{id}/disabled (admin).
func (h *FeedbackHandler) ToggleDisabled(w http.ResponseWriter, r *http.Request) {
	fb, err := h.feedbackService.ToggleDisabled(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, fb)
}

// Stats handles GET /api/feedback/stats (admin).
func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.feedbackService.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Delete handles DELETE /api/feedback/{id} (admin).
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.feedbackService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
