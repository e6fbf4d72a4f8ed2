package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/jwt"
)

const CookieName = "tienda_session"

// Session identifies the authenticated user of a request.
type Session struct {
	UserID user.ID
	Email  string
}

type Store struct {
	jwt    *jwt.Service
	ttl    time.Duration
	secure bool
}

func NewStore(jwtService *jwt.Service, ttl time.Duration, secure bool) *Store {
	return &Store{jwt: jwtService, ttl: ttl, secure: secure}
}

// Load decodes the session cookie. A missing, forged or expired token is anonymous.
func (s *Store) Load(c *gin.Context) (Session, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return Session{}, false
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return Session{}, false
	}

	return Session{UserID: user.ID(claims.UserID), Email: claims.Email}, true
}

func (s *Store) Start(c *gin.Context, u *user.User) error {
	token, err := s.jwt.GenerateJWT(int64(u.ID), u.Email, s.ttl)
	if err != nil {
		return err
	}
	s.setCookie(c, token, int(s.ttl.Seconds()))

	return nil
}

func (s *Store) Clear(c *gin.Context) {
	s.setCookie(c, "", -1)
}

func (s *Store) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.secure, true)
}
