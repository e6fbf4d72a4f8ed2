package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	purposeSession = "session"
	purposeFlash   = "flash"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

type Service struct {
	secret []byte
}

func New(secret string) *Service { return &Service{secret: []byte(secret)} }

type (
	Claims struct {
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
		jwt.RegisteredClaims
	}
	Notice struct {
		Category string `json:"category"`
		Message  string `json:"message"`
	}
	FlashClaims struct {
		Notices []Notice `json:"notices"`
		jwt.RegisteredClaims
	}
)

func (s *Service) GenerateJWT(userID int64, email string, expiresIn time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{purposeSession},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	return s.sign(claims)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if err := s.parse(tokenStr, claims, purposeSession); err != nil {
		return nil, err
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// GenerateFlash signs one-time notices so clients cannot inject their own.
func (s *Service) GenerateFlash(notices []Notice, expiresIn time.Duration) (string, error) {
	claims := FlashClaims{
		Notices: notices,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{purposeFlash},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	return s.sign(claims)
}

func (s *Service) ValidateFlash(tokenStr string) ([]Notice, error) {
	claims := &FlashClaims{}
	if err := s.parse(tokenStr, claims, purposeFlash); err != nil {
		return nil, err
	}

	return claims.Notices, nil
}

func (s *Service) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

func (s *Service) parse(tokenStr string, claims jwt.Claims, audience string) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
