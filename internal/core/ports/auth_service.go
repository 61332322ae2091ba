package ports

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string, roleNames []string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
