package ports

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

// UserRepository is the credential store: identity lookup and existence
// checks by handle or email, plus creation at signup.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
