package ports

import (
	"context"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
)

// UserStore persists internal accounts for the authenticated surface.
type UserStore interface {
	// CreateUser rejects a duplicate username with domain.ErrUserExists.
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthService implements registration and login for the internal surface.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
