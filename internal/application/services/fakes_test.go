package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/metrics"
	"tienda-admin/internal/infrastructure/mq"
)

type fakeUserRepository struct {
	FetchUserByIDFunc    func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FetchUsersFunc       func(ctx context.Context) (user.Users, error)
	CreateUserFunc       func(ctx context.Context, req user.User) (*user.User, error)
	UpdateUserFunc       func(ctx context.Context, req user.User) (*user.User, error)
	DeactivateUserFunc   func(ctx context.Context, id user.ID) error
}

func (f *fakeUserRepository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *fakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *fakeUserRepository) FetchUsers(ctx context.Context) (user.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersFunc(ctx)
}
func (f *fakeUserRepository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *fakeUserRepository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, req)
}
func (f *fakeUserRepository) DeactivateUser(ctx context.Context, id user.ID) error {
	if f.DeactivateUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeactivateUserFunc(ctx, id)
}

type fakeActivityRepository struct {
	records []activity.Record
	err     error
	limit   int
}

func (f *fakeActivityRepository) InsertRecord(_ context.Context, r activity.Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeActivityRepository) FetchRecent(_ context.Context, limit int) (activity.Entries, error) {
	f.limit = limit
	return activity.Entries{}, f.err
}

type recordingPublisher struct {
	events []mq.Event
	full   bool
}

func (p *recordingPublisher) Publish(e mq.Event) bool {
	if p.full {
		return false
	}
	p.events = append(p.events, e)
	return true
}

func newCounter() *prometheus.CounterVec {
	return metrics.NewCounterWith(prometheus.NewRegistry())
}
