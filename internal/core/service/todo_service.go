package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/taskvault-api/internal/core/domain"
	"github.com/taskvault/taskvault-api/internal/core/ports"
)

type todoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

// NewTodoService returns a TodoService implementation. All operations are
// scoped to the owner; a todo belonging to another user behaves exactly
// like a missing one.
func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) ports.TodoService {
	return &todoService{repo: repo, log: log}
}

func (s *todoService) List(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error) {
	return s.repo.FindByOwner(ctx, ownerID, completed)
}

func (s *todoService) Get(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return s.repo.FindByIDAndOwner(ctx, id, ownerID)
}

func (s *todoService) Create(ctx context.Context, ownerID, title, description string) (*domain.Todo, error) {
	now := time.Now().UTC()
	todo := &domain.Todo{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, todo)
}

func (s *todoService) Update(ctx context.Context, ownerID, id, title, description string, completed bool) (*domain.Todo, error) {
	todo, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.Description = description
	todo.Completed = completed
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Toggle(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	todo, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, id, ownerID)
}
