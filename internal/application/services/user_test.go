package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/hasher"
	"tienda-admin/internal/infrastructure/metrics"
	"tienda-admin/internal/infrastructure/mq"
)

func newUserService(repo user.Repository, pub *recordingPublisher) (*UserService, *hasher.Hasher) {
	h := hasher.New(bcrypt.MinCost)
	return NewUserService(repo, h, pub, newCounter()).(*UserService), h
}

func TestUserService_RegisterUser_StoresDigestOnly(t *testing.T) {
	var stored user.User
	repo := &fakeUserRepository{
		CreateUserFunc: func(ctx context.Context, req user.User) (*user.User, error) {
			stored = req
			req.ID = 11
			req.CreatedAt = time.Now()
			return &req, nil
		},
	}
	pub := &recordingPublisher{}
	svc, h := newUserService(repo, pub)

	u, err := svc.RegisterUser(context.Background(), user.User{
		Email:    "a@x.com",
		Name:     "A",
		Lastname: "B",
	}, "p")
	require.NoError(t, err)

	assert.Equal(t, user.ID(11), u.ID)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "p", stored.PasswordHash)
	assert.True(t, h.Verify(stored.PasswordHash, "p"))

	require.Len(t, pub.events, 1)
	assert.Equal(t, mq.UserRegistered, pub.events[0].Type)
	assert.Equal(t, int64(11), pub.events[0].ActorID)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.mCounter.WithLabelValues(metrics.UserRegistered)))
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		create     func(ctx context.Context, req user.User) (*user.User, error)
		password   string
		wantErr    error
		wantEvents int
	}{
		{
			name: "success",
			create: func(ctx context.Context, req user.User) (*user.User, error) {
				req.ID = 20
				return &req, nil
			},
			password:   "secret",
			wantEvents: 1,
		},
		{
			name: "duplicate email",
			create: func(ctx context.Context, req user.User) (*user.User, error) {
				return nil, user.ErrEmailAlreadyExists
			},
			password: "secret",
			wantErr:  user.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			pub := &recordingPublisher{}
			svc, _ := newUserService(&fakeUserRepository{CreateUserFunc: tt.create}, pub)

			u, err := svc.CreateUser(context.Background(), 1, user.User{Email: "n@x.com"}, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				require.NotNil(t, u)
			}
			require.Len(t, pub.events, tt.wantEvents)
			if tt.wantEvents > 0 {
				assert.Equal(t, mq.UserCreated, pub.events[0].Type)
				assert.Equal(t, int64(1), pub.events[0].ActorID)
				assert.Equal(t, int64(20), pub.events[0].UserID)
			}
		})
	}
}

func TestUserService_CreateUser_DroppedEventIsCounted(t *testing.T) {
	repo := &fakeUserRepository{
		CreateUserFunc: func(ctx context.Context, req user.User) (*user.User, error) { return &req, nil },
	}
	svc, _ := newUserService(repo, &recordingPublisher{full: true})

	_, err := svc.CreateUser(context.Background(), 1, user.User{Email: "n@x.com"}, "p")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.mCounter.WithLabelValues(metrics.EventsDropped)))
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		pub := &recordingPublisher{}
		repo := &fakeUserRepository{
			UpdateUserFunc: func(ctx context.Context, req user.User) (*user.User, error) { return nil, nil },
		}
		svc, _ := newUserService(repo, pub)

		u, err := svc.UpdateUser(context.Background(), 1, user.User{ID: 9})
		require.NoError(t, err)
		assert.Nil(t, u)
		assert.Empty(t, pub.events)
	})

	t.Run("success", func(t *testing.T) {
		pub := &recordingPublisher{}
		repo := &fakeUserRepository{
			UpdateUserFunc: func(ctx context.Context, req user.User) (*user.User, error) { return &req, nil },
		}
		svc, _ := newUserService(repo, pub)

		u, err := svc.UpdateUser(context.Background(), 1, user.User{ID: 9, Name: "Nuevo"})
		require.NoError(t, err)
		assert.Equal(t, "Nuevo", u.Name)
		require.Len(t, pub.events, 1)
		assert.Equal(t, mq.UserUpdated, pub.events[0].Type)
	})
}

func TestUserService_DeactivateUser(t *testing.T) {
	tests := []struct {
		name       string
		actor      user.ID
		target     user.ID
		repoErr    error
		wantErr    error
		wantCalled bool
	}{
		{name: "self", actor: 1, target: 1, wantErr: ErrSelfDeactivation},
		{name: "other", actor: 1, target: 2, wantCalled: true},
		{name: "missing", actor: 1, target: 3, repoErr: user.ErrNotFound, wantErr: user.ErrNotFound, wantCalled: true},
		{name: "db error", actor: 1, target: 4, repoErr: errors.New("boom"), wantCalled: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &fakeUserRepository{
				DeactivateUserFunc: func(ctx context.Context, id user.ID) error {
					called = true
					assert.Equal(t, tt.target, id)
					return tt.repoErr
				},
			}
			pub := &recordingPublisher{}
			svc, _ := newUserService(repo, pub)

			err := svc.DeactivateUser(context.Background(), tt.actor, tt.target)
			assert.Equal(t, tt.wantCalled, called)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, pub.events)
			case tt.repoErr != nil:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Len(t, pub.events, 1)
				assert.Equal(t, mq.UserDeactivated, pub.events[0].Type)
			}
		})
	}
}
