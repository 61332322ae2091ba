package ports

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

// TodoRepository persists todos. Every read and write is scoped to the
// owning user; there is no cross-user access path.
type TodoRepository interface {
	// FindByOwner lists the owner's todos, optionally filtered by completion.
	FindByOwner(ctx context.Context, ownerID string, completed *bool) ([]domain.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id, ownerID string) error
}
