package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

type stubTodoRepo struct {
	todos  map[string]*domain.Todo
	nextID int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[string]*domain.Todo)}
}

func cloneTodo(t *domain.Todo) *domain.Todo {
	clone := *t
	return &clone
}

func (r *stubTodoRepo) FindByOwner(_ context.Context, ownerID string, completed *bool) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, todo := range r.todos {
		if todo.OwnerID != ownerID {
			continue
		}
		if completed != nil && todo.Completed != *completed {
			continue
		}
		out = append(out, *todo)
	}
	return out, nil
}

func (r *stubTodoRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Todo, error) {
	todo, ok := r.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, domain.ErrTodoNotFound
	}
	return cloneTodo(todo), nil
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.nextID++
	copy := cloneTodo(todo)
	copy.ID = fmt.Sprintf("todo-%d", r.nextID)
	r.todos[copy.ID] = cloneTodo(copy)
	return copy, nil
}

func (r *stubTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	existing, ok := r.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return domain.ErrTodoNotFound
	}
	r.todos[todo.ID] = cloneTodo(todo)
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id, ownerID string) error {
	todo, ok := r.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func TestTodoService_CreateAndGet(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "owner-1", "buy milk", "2 liters")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Completed {
		t.Fatalf("unexpected created todo: %+v", created)
	}

	got, err := svc.Get(context.Background(), "owner-1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "buy milk" || got.Description != "2 liters" {
		t.Fatalf("unexpected todo: %+v", got)
	}
}

func TestTodoService_OwnershipScoping(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "owner-1", "secret task", "")

	if _, err := svc.Get(context.Background(), "owner-2", created.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner-2", created.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for foreign delete, got %v", err)
	}
}

func TestTodoService_Toggle(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "owner-1", "task", "")

	toggled, err := svc.Toggle(context.Background(), "owner-1", created.ID)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected todo to be completed after toggle")
	}

	toggled, err = svc.Toggle(context.Background(), "owner-1", created.ID)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if toggled.Completed {
		t.Fatalf("expected todo to be pending after second toggle")
	}
}

func TestTodoService_Update(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "owner-1", "old title", "old")

	updated, err := svc.Update(context.Background(), "owner-1", created.ID, "new title", "new", true)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "new title" || updated.Description != "new" || !updated.Completed {
		t.Fatalf("unexpected updated todo: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "owner-1", "missing", "t", "", false); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoService_ListFilter(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	a, _ := svc.Create(context.Background(), "owner-1", "done task", "")
	_, _ = svc.Create(context.Background(), "owner-1", "pending task", "")
	_, _ = svc.Create(context.Background(), "owner-2", "someone else", "")
	if _, err := svc.Toggle(context.Background(), "owner-1", a.ID); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	all, err := svc.List(context.Background(), "owner-1", nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(all))
	}

	completed := true
	done, err := svc.List(context.Background(), "owner-1", &completed)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(done) != 1 || done[0].Title != "done task" {
		t.Fatalf("unexpected completed list: %+v", done)
	}
}
