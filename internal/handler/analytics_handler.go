package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/folio/backend/internal/service"
)

// AnalyticsHandler handles page-view tracking and the analytics dashboard.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// clientIP extracts the visitor IP from forwarded headers, falling back to
// the transport peer address and finally "unknown".
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Track handles POST /api/page-views (public). The view is taken entirely
// from request metadata; there is no body to validate.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	if err := h.analyticsService.Record(r.Context(), clientIP(r), r.UserAgent()); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Summary handles GET /api/analytics (admin).
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// DeleteView handles DELETE /api/analytics?id= (admin).
func (h *AnalyticsHandler) DeleteView(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondErrorCode(w, http.StatusBadRequest, "id_required")
		return
	}
	if err := h.analyticsService.DeleteView(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MyIP handles GET /api/my-ip (public).
func (h *AnalyticsHandler) MyIP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"ip": clientIP(r)})
}
