package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/auth"
	"github.com/gorilla/sessions"
)

// AuthHandler handles admin login, logout and profile management.
type AuthHandler struct {
	adminService service.AdminService
	store        sessions.Store
}

// NewAuthHandler creates an AuthHandler with the given service and session store.
func NewAuthHandler(adminService service.AdminService, store sessions.Store) *AuthHandler {
	return &AuthHandler{adminService: adminService, store: store}
}

// loginRequest is the body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login (public). A bad email and a bad password
// produce the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "email is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	admin, err := h.adminService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := auth.SignIn(w, r, h.store, admin.ID); err != nil {
		slog.Error("session write failed", "error", err)
		respondErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, admin)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r, h.store); err != nil {
		slog.Error("session clear failed", "error", err)
		respondErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /api/me (admin).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := auth.AdminIDFromContext(r.Context())
	if !ok {
		respondErrorCode(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	admin, err := h.adminService.GetByID(r.Context(), adminID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, admin)
}

// updateMeRequest is the body for PATCH /api/me. nil fields stay unchanged.
type updateMeRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password"`
}

// UpdateMe handles PATCH /api/me (admin).
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	adminID, ok := auth.AdminIDFromContext(r.Context())
	if !ok {
		respondErrorCode(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	fields := map[string]string{}
	if req.Name != nil && *req.Name == "" {
		fields["name"] = "name cannot be empty"
	}
	if req.Email != nil && *req.Email == "" {
		fields["email"] = "email cannot be empty"
	}
	if req.Password != nil && len(*req.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	admin, err := h.adminService.UpdateProfile(r.Context(), adminID, service.AdminProfilePatch{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Password:  req.Password,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, admin)
}
