package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/pkg/cloudinary"
)

type mockMediaClient struct {
	signFunc    func(params cloudinary.SignParams) (cloudinary.Signature, error)
	uploadFunc  func(ctx context.Context, file io.Reader, params cloudinary.SignParams) (*cloudinary.UploadResult, error)
	destroyFunc func(ctx context.Context, publicID string, invalidate bool) (string, error)
}

func (m *mockMediaClient) SignUpload(params cloudinary.SignParams) (cloudinary.Signature, error) {
	if m.signFunc != nil {
		return m.signFunc(params)
	}
	return cloudinary.Signature{}, nil
}

func (m *mockMediaClient) Upload(ctx context.Context, file io.Reader, params cloudinary.SignParams) (*cloudinary.UploadResult, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, file, params)
	}
	return &cloudinary.UploadResult{}, nil
}

func (m *mockMediaClient) Destroy(ctx context.Context, publicID string, invalidate bool) (string, error) {
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, publicID, invalidate)
	}
	return "ok", nil
}

func TestMediaHandler_Signature_ReturnsSignedParams(t *testing.T) {
	h := NewMediaHandler(&mockMediaClient{
		signFunc: func(params cloudinary.SignParams) (cloudinary.Signature, error) {
			return cloudinary.Signature{
				Signature:    "abc123",
				Timestamp:    1700000000,
				UploadPreset: "portfolio",
				CloudName:    "demo",
				APIKey:       "key",
			}, nil
		},
	})

	req := httptest.NewRequest("POST", "/api/cloudinary/signature", strings.NewReader(`{"folder":"projects"}`))
	rec := httptest.NewRecorder()
	h.Signature(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var sig cloudinary.Signature
	if err := json.NewDecoder(rec.Body).Decode(&sig); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if sig.Signature != "abc123" || sig.CloudName != "demo" {
		t.Errorf("unexpected signature payload: %+v", sig)
	}
}

func TestMediaHandler_Signature_NotConfigured(t *testing.T) {
	h := NewMediaHandler(&mockMediaClient{
		signFunc: func(params cloudinary.SignParams) (cloudinary.Signature, error) {
			return cloudinary.Signature{}, cloudinary.ErrNotConfigured
		},
	})

	req := httptest.NewRequest("POST", "/api/cloudinary/signature", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Signature(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when not configured, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "CLOUDINARY") {
		t.Error("internal configuration detail must not leak to the caller")
	}
}

func TestMediaHandler_Destroy_RequiresPublicID(t *testing.T) {
	called := false
	h := NewMediaHandler(&mockMediaClient{
		destroyFunc: func(ctx context.Context, publicID string, invalidate bool) (string, error) {
			called = true
			return "ok", nil
		},
	})

	req := httptest.NewRequest("POST", "/api/cloudinary/destroy", strings.NewReader(`{"invalidate":true}`))
	rec := httptest.NewRecorder()
	h.Destroy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("destroy must not run without a publicId")
	}
}

func TestMediaHandler_Upload_RequiresFile(t *testing.T) {
	h := NewMediaHandler(&mockMediaClient{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("folder", "projects")
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/upload-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file part, got %d", rec.Code)
	}
}

func TestMediaHandler_Upload_ReturnsURLAndPublicID(t *testing.T) {
	h := NewMediaHandler(&mockMediaClient{
		uploadFunc: func(ctx context.Context, file io.Reader, params cloudinary.SignParams) (*cloudinary.UploadResult, error) {
			if params.Folder != "projects" {
				t.Errorf("expected folder from form, got %q", params.Folder)
			}
			if params.PublicID == "" {
				t.Error("expected a generated public id")
			}
			return &cloudinary.UploadResult{URL: "https://cdn/img.png", PublicID: params.PublicID}, nil
		},
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("folder", "projects")
	fw, _ := mw.CreateFormFile("file", "img.png")
	_, _ = fw.Write([]byte("fake image bytes"))
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/upload-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result cloudinary.UploadResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if result.URL != "https://cdn/img.png" {
		t.Errorf("unexpected result: %+v", result)
	}
}
