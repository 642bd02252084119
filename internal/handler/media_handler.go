package handler

import (
	"encoding/json"
	"net/http"

	"github.com/folio/backend/pkg/cloudinary"
	"github.com/google/uuid"
)

// maxUploadBytes bounds accepted image uploads.
const maxUploadBytes = 10 << 20

// MediaHandler proxies signed-upload, upload and delete operations to the
// external media host.
type MediaHandler struct {
	media cloudinary.Client
}

// NewMediaHandler creates a MediaHandler with the given client.
func NewMediaHandler(media cloudinary.Client) *MediaHandler {
	return &MediaHandler{media: media}
}

// signatureRequest is the body for POST /api/cloudinary/signature.
type signatureRequest struct {
	Timestamp    int64  `json:"timestamp"`
	Folder       string `json:"folder"`
	PublicID     string `json:"publicId"`
	Invalidate   bool   `json:"invalidate"`
	UploadPreset string `json:"uploadPreset"`
}

// Signature handles POST /api/cloudinary/signature (admin). Returns the
// signed parameter set for a direct browser upload; the API secret stays
// server-side.
func (h *MediaHandler) Signature(w http.ResponseWriter, r *http.Request) {
	var req signatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	sig, err := h.media.SignUpload(cloudinary.SignParams{
		Timestamp:    req.Timestamp,
		Folder:       req.Folder,
		PublicID:     req.PublicID,
		Invalidate:   req.Invalidate,
		UploadPreset: req.UploadPreset,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sig)
}

// destroyRequest is the body for POST /api/cloudinary/destroy.
type destroyRequest struct {
	PublicID   string `json:"publicId"`
	Invalidate bool   `json:"invalidate"`
}

// Destroy handles POST /api/cloudinary/destroy (admin).
func (h *MediaHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	var req destroyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.PublicID == "" {
		respondValidation(w, map[string]string{"publicId": "publicId is required"})
		return
	}

	result, err := h.media.Destroy(r.Context(), req.PublicID, req.Invalidate)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"result": result})
}

// Upload handles POST /api/upload-image (admin). Accepts multipart form data
// with a "file" part and an optional "folder" field, uploads server-side and
// returns the hosted URL with its public id.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "invalid_multipart_form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondValidation(w, map[string]string{"file": "file is required"})
		return
	}
	defer file.Close()

	result, err := h.media.Upload(r.Context(), file, cloudinary.SignParams{
		Folder:   r.FormValue("folder"),
		PublicID: uuid.NewString(),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
