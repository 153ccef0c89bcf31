package ports

import (
	"context"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations are read-only at
// request time: users are loaded or seeded once at startup.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthService authenticates credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
