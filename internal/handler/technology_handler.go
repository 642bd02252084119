package handler

import (
	"encoding/json"
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// TechnologyHandler handles the skills/stack CRUD.
type TechnologyHandler struct {
	techService service.TechnologyService
}

// NewTechnologyHandler creates a TechnologyHandler with the given service.
func NewTechnologyHandler(techService service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{techService: techService}
}

// List handles GET /api/technologies (public).
// Entries come back sorted by category, sort order, then name.
func (h *TechnologyHandler) List(w http.ResponseWriter, r *http.Request) {
	techs, err := h.techService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if techs == nil {
		techs = []*model.Technology{}
	}
	respondJSON(w, http.StatusOK, techs)
}

// createTechnologyRequest is the body for POST /api/technologies.
type createTechnologyRequest struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

// Create handles POST /api/technologies (admin).
func (h *TechnologyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTechnologyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "name is required"
	}
	if req.Category == "" {
		fields["category"] = "category is required"
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	tech := &model.Technology{
		Name:      req.Name,
		Icon:      req.Icon,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
	if err := h.techService.Create(r.Context(), tech); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tech)
}

// Update handles PUT /api/technologies/{id} (admin). Partial patch; absent
// fields stay unchanged.
func (h *TechnologyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.TechnologyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		respondValidation(w, map[string]string{"name": "name cannot be empty"})
		return
	}
	if patch.Category != nil && *patch.Category == "" {
		respondValidation(w, map[string]string{"category": "category cannot be empty"})
		return
	}

	tech, err := h.techService.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

// Delete handles DELETE /api/technologies/{id} (admin).
func (h *TechnologyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.techService.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
