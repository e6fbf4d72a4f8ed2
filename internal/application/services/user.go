package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"tienda-admin/internal/application/ports"
	domain "tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/metrics"
	"tienda-admin/internal/infrastructure/mq"
)

var ErrSelfDeactivation = errors.New("cannot deactivate own account")

type UserService struct {
	userRepository domain.Repository
	hasher         ports.Hasher
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.Hasher,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		events:         events,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.FetchUserByID(ctx, id)
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	return us.userRepository.FetchUsers(ctx)
}

func (us *UserService) CreateUser(ctx context.Context, actorID domain.ID, u domain.User, password string) (*domain.User, error) {
	uRet, err := us.insert(ctx, u, password)
	if err != nil {
		return nil, err
	}

	us.publish(mq.UserCreated, actorID, uRet)
	us.mCounter.WithLabelValues(metrics.UserCreated).Inc()

	return uRet, nil
}

func (us *UserService) RegisterUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	uRet, err := us.insert(ctx, u, password)
	if err != nil {
		return nil, err
	}

	us.publish(mq.UserRegistered, uRet.ID, uRet)
	us.mCounter.WithLabelValues(metrics.UserRegistered).Inc()

	return uRet, nil
}

// insert stores only the digest of password; new users are always active.
func (us *UserService) insert(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	digest, err := us.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = digest
	u.Active = true

	return us.userRepository.CreateUser(ctx, u)
}

// UpdateUser returns (nil, nil) when the user does not exist.
func (us *UserService) UpdateUser(ctx context.Context, actorID domain.ID, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	us.publish(mq.UserUpdated, actorID, uRet)
	us.mCounter.WithLabelValues(metrics.UserUpdated).Inc()

	return uRet, nil
}

func (us *UserService) DeactivateUser(ctx context.Context, actorID, id domain.ID) error {
	if actorID == id {
		return ErrSelfDeactivation
	}
	if err := us.userRepository.DeactivateUser(ctx, id); err != nil {
		return err
	}

	us.publish(mq.UserDeactivated, actorID, &domain.User{ID: id})
	us.mCounter.WithLabelValues(metrics.UserDeactivated).Inc()

	return nil
}

func (us *UserService) publish(eventType string, actorID domain.ID, u *domain.User) {
	payload := &mq.UserPayload{
		ID:       int64(u.ID),
		Email:    u.Email,
		Name:     u.Name,
		Lastname: u.Lastname,
		Active:   u.Active,
	}
	if !us.events.Publish(mq.NewEvent(eventType, int64(actorID), int64(u.ID), payload)) {
		us.mCounter.WithLabelValues(metrics.EventsDropped).Inc()
	}
}
