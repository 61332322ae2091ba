package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskvault-api/internal/api/middleware"
	"github.com/taskvault/taskvault-api/internal/core/domain"
)

type stubTodoService struct {
	listFn   func(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error)
	getFn    func(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	createFn func(ctx context.Context, ownerID, title, description string) (*domain.Todo, error)
	updateFn func(ctx context.Context, ownerID, id, title, description string, completed bool) (*domain.Todo, error)
	toggleFn func(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (s *stubTodoService) List(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error) {
	return s.listFn(ctx, ownerID, completed)
}

func (s *stubTodoService) Get(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return s.getFn(ctx, ownerID, id)
}

func (s *stubTodoService) Create(ctx context.Context, ownerID, title, description string) (*domain.Todo, error) {
	return s.createFn(ctx, ownerID, title, description)
}

func (s *stubTodoService) Update(ctx context.Context, ownerID, id, title, description string, completed bool) (*domain.Todo, error) {
	return s.updateFn(ctx, ownerID, id, title, description, completed)
}

func (s *stubTodoService) Toggle(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return s.toggleFn(ctx, ownerID, id)
}

func (s *stubTodoService) Delete(ctx context.Context, ownerID, id string) error {
	return s.deleteFn(ctx, ownerID, id)
}

func newTodoContext(t *testing.T, method, target, body string, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authenticated {
		middleware.SetPrincipal(c, domain.Principal{ID: "owner-1", Username: "john", Roles: []domain.Role{domain.RoleUser}})
	}
	return c, rec
}

func TestTodoHandler_List(t *testing.T) {
	stub := &stubTodoService{
		listFn: func(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error) {
			if ownerID != "owner-1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			if completed == nil || !*completed {
				t.Fatalf("expected completed=true filter")
			}
			return []domain.Todo{{ID: "t1", Title: "done"}}, nil
		},
	}
	handler := NewTodoHandler(stub)

	c, rec := newTodoContext(t, http.MethodGet, "/todos?completed=true", "", true)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var todos []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(todos) != 1 || todos[0]["title"] != "done" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestTodoHandler_List_BadFilter(t *testing.T) {
	handler := NewTodoHandler(&stubTodoService{})

	c, _ := newTodoContext(t, http.MethodGet, "/todos?completed=maybe", "", true)
	err := handler.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTodoHandler_Create(t *testing.T) {
	stub := &stubTodoService{
		createFn: func(ctx context.Context, ownerID, title, description string) (*domain.Todo, error) {
			return &domain.Todo{ID: "t1", OwnerID: ownerID, Title: title, Description: description}, nil
		},
	}
	handler := NewTodoHandler(stub)

	c, rec := newTodoContext(t, http.MethodPost, "/todos", `{"title":"buy milk","description":"2 liters"}`, true)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTodoHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubTodoService{
		createFn: func(ctx context.Context, ownerID, title, description string) (*domain.Todo, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTodoHandler(stub)

	c, _ := newTodoContext(t, http.MethodPost, "/todos", `{"description":"no title"}`, true)
	err := handler.Create(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Fatalf("expected title validation message, got %v", ve.Fields)
	}
}

func TestTodoHandler_Unauthenticated(t *testing.T) {
	handler := NewTodoHandler(&stubTodoService{})

	c, _ := newTodoContext(t, http.MethodGet, "/todos", "", false)
	err := handler.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestTodoHandler_Get_NotFound(t *testing.T) {
	stub := &stubTodoService{
		getFn: func(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	handler := NewTodoHandler(stub)

	c, _ := newTodoContext(t, http.MethodGet, "/todos/missing", "", true)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			deleted = ownerID + "/" + id
			return nil
		},
	}
	handler := NewTodoHandler(stub)

	c, rec := newTodoContext(t, http.MethodDelete, "/todos/t1", "", true)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "owner-1/t1" {
		t.Fatalf("unexpected delete scope: %s", deleted)
	}
}
