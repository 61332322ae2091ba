package ports

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

type TodoService interface {
	List(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	Create(ctx context.Context, ownerID, title, description string) (*domain.Todo, error)
	Update(ctx context.Context, ownerID, id, title, description string, completed bool) (*domain.Todo, error)
	Toggle(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	Delete(ctx context.Context, ownerID, id string) error
}
