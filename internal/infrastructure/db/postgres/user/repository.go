package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/db/postgres"
)

type Repository struct {
	gw postgres.Gateway
}

func NewRepository(gw postgres.Gateway) user.Repository {
	return &Repository{gw: gw}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.PasswordHash,
		&u.Name,
		&u.Lastname,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Active,

		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := Users{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, int64(id))
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(
		ctx,
		InsertUser,
		req.PasswordHash, req.Name, req.Lastname, req.Email, req.Phone, req.Address,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

// UpdateUser returns (nil, nil) when the user does not exist.
func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(ctx, UpdateUserByID,
		req.Name, req.Lastname, req.Email, req.Phone, req.Address, req.Active, int64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) DeactivateUser(ctx context.Context, id user.ID) error {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, DeactivateUserByID, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deactivate user %d: %w", id, user.ErrNotFound)
	}

	return nil
}
