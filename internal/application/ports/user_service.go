package ports

import (
	"context"

	"tienda-admin/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	CreateUser(ctx context.Context, actorID user.ID, u user.User, password string) (*user.User, error)
	RegisterUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, actorID user.ID, u user.User) (*user.User, error)
	DeactivateUser(ctx context.Context, actorID, id user.ID) error
}
