package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/metrics"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepository user.Repository
	hasher         ports.Hasher
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository user.Repository,
	hasher ports.Hasher,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		mCounter:       mCounter,
	}
}

func (as *AuthService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !as.hasher.Verify(u.PasswordHash, password) {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, ErrInvalidCredentials
	}

	as.mCounter.WithLabelValues(metrics.LoginSucceeded).Inc()

	return u, nil
}
