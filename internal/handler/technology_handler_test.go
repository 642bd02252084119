package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type mockTechnologyService struct {
	createFunc  func(ctx context.Context, tech *model.Technology) error
	listFunc    func(ctx context.Context) ([]*model.Technology, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Technology, error)
	updateFunc  func(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockTechnologyService) Create(ctx context.Context, tech *model.Technology) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tech)
	}
	return nil
}

func (m *mockTechnologyService) List(ctx context.Context) ([]*model.Technology, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTechnologyService) GetByID(ctx context.Context, id string) (*model.Technology, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnologyService) Update(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTechnologyService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestTechnologyHandler_List_EmptyIsArray(t *testing.T) {
	h := NewTechnologyHandler(&mockTechnologyService{
		listFunc: func(ctx context.Context) ([]*model.Technology, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/technologies", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestTechnologyHandler_Create_Created(t *testing.T) {
	h := NewTechnologyHandler(&mockTechnologyService{
		createFunc: func(ctx context.Context, tech *model.Technology) error {
			tech.ID = "t1"
			return nil
		},
	})

	body := `{"name":"Go","icon":"go.svg","category":"backend","sort_order":1}`
	req := httptest.NewRequest("POST", "/api/technologies", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Technology
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != "t1" || got.Name != "Go" || got.Category != "backend" {
		t.Errorf("unexpected technology %+v", got)
	}
}

func TestTechnologyHandler_Create_RequiresNameAndCategory(t *testing.T) {
	called := false
	h := NewTechnologyHandler(&mockTechnologyService{
		createFunc: func(ctx context.Context, tech *model.Technology) error {
			called = true
			return nil
		},
	})

	req := httptest.NewRequest("POST", "/api/technologies", strings.NewReader(`{"icon":"x.svg"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called on validation failure")
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Fields) != 2 {
		t.Errorf("expected errors for name and category, got %v", body.Fields)
	}
}

func TestTechnologyHandler_Update_PartialPatch(t *testing.T) {
	var gotID string
	var gotPatch model.TechnologyPatch
	h := NewTechnologyHandler(&mockTechnologyService{
		updateFunc: func(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
			gotID = id
			gotPatch = patch
			return &model.Technology{ID: id, Name: "Go", SortOrder: *patch.SortOrder}, nil
		},
	})

	router := chi.NewRouter()
	router.Put("/api/technologies/{id}", h.Update)

	req := httptest.NewRequest("PUT", "/api/technologies/t1", strings.NewReader(`{"sort_order":5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != "t1" {
		t.Errorf("expected id t1, got %q", gotID)
	}
	if gotPatch.SortOrder == nil || *gotPatch.SortOrder != 5 {
		t.Errorf("expected sort_order patch, got %+v", gotPatch)
	}
	if gotPatch.Name != nil || gotPatch.Category != nil || gotPatch.Icon != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestTechnologyHandler_Update_NotFound(t *testing.T) {
	h := NewTechnologyHandler(&mockTechnologyService{
		updateFunc: func(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
			return nil, repository.ErrNotFound
		},
	})

	router := chi.NewRouter()
	router.Put("/api/technologies/{id}", h.Update)

	req := httptest.NewRequest("PUT", "/api/technologies/missing", strings.NewReader(`{"name":"Rust"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTechnologyHandler_Update_RejectsEmptyName(t *testing.T) {
	called := false
	h := NewTechnologyHandler(&mockTechnologyService{
		updateFunc: func(ctx context.Context, id string, patch model.TechnologyPatch) (*model.Technology, error) {
			called = true
			return nil, nil
		},
	})

	router := chi.NewRouter()
	router.Put("/api/technologies/{id}", h.Update)

	req := httptest.NewRequest("PUT", "/api/technologies/t1", strings.NewReader(`{"name":""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called with an empty name")
	}
}

func TestTechnologyHandler_Delete(t *testing.T) {
	var gotID string
	h := NewTechnologyHandler(&mockTechnologyService{
		deleteFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	})

	router := chi.NewRouter()
	router.Delete("/api/technologies/{id}", h.Delete)

	req := httptest.NewRequest("DELETE", "/api/technologies/t1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "t1" {
		t.Errorf("expected id t1, got %q", gotID)
	}
}
