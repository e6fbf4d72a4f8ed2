package ports

import (
	"context"

	"tienda-admin/internal/domain/user"
)

type Auth interface {
	// Authenticate returns services.ErrInvalidCredentials for an unknown
	// email and for a wrong secret alike.
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
}
