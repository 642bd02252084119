package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin curation.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitContactRequest is the expected JSON body for POST /api/contact-messages.
type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req submitContactRequest) validate() map[string]string {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "name is required"
	}
	if req.Email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "email is not a valid address"
	}
	if req.Message == "" {
		fields["message"] = "message is required"
	} else if len([]rune(req.Message)) > maxMessageLength {
		fields["message"] = "message exceeds 5000 characters"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Submit handles POST /api/contact-messages (public).
// name, email and message are required; subject is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if fields := req.validate(); fields != nil {
		respondValidation(w, fields)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}

// List handles GET /api/contact-messages (admin).
// Supports query params: read (true/false), limit, offset.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{Limit: 100}

	if v := r.URL.Query().Get("read"); v != "" {
		read, err := strconv.ParseBool(v)
		if err != nil {
			respondErrorCode(w, http.StatusBadRequest, "invalid_read_filter")
			return
		}
		opts.Read = &read
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	respondJSON(w, http.StatusOK, messages)
}

// markReadRequest is the body for PATCH /api/contact-messages/{id}/read.
// An absent read field defaults to true.
type markReadRequest struct {
	Read *bool `json:"read"`
}

// MarkRead handles PATCH /api/contact-messages/{id}/read (admin).
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	read := true
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Read != nil {
		read = *req.Read
	}

	msg, err := h.contactService.SetRead(r.Context(), id, read)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/contact-messages/{id} (admin).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
