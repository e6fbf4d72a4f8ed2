package flash

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tienda-admin/internal/infrastructure/jwt"
)

const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"

	CookieName = "tienda_flash"

	ctxPending = "flashPending"
	ttl        = 5 * time.Minute
)

// Store keeps one-time notices in a signed cookie until the next rendered page.
type Store struct {
	jwt    *jwt.Service
	logger *zap.Logger
	secure bool
}

func New(jwtService *jwt.Service, logger *zap.Logger, secure bool) *Store {
	return &Store{jwt: jwtService, logger: logger, secure: secure}
}

// Add queues a notice for the next page rendered for this client.
func (s *Store) Add(c *gin.Context, category, message string) {
	notices, ok := pendingNotices(c)
	if !ok {
		notices = s.stored(c)
	}
	notices = append(notices, jwt.Notice{Category: category, Message: message})
	c.Set(ctxPending, notices)

	token, err := s.jwt.GenerateFlash(notices, ttl)
	if err != nil {
		s.logger.Error("GenerateFlash() error", zap.Error(err))
		return
	}
	s.setCookie(c, token, int(ttl.Seconds()))
}

// Consume returns the queued notices, including any added during this
// request, and clears them.
func (s *Store) Consume(c *gin.Context) []jwt.Notice {
	notices, ok := pendingNotices(c)
	if !ok {
		notices = s.stored(c)
	}
	c.Set(ctxPending, []jwt.Notice{})

	if _, err := c.Cookie(CookieName); err == nil || ok {
		s.setCookie(c, "", -1)
	}

	return notices
}

// stored decodes the incoming cookie; a forged or expired one yields nothing.
func (s *Store) stored(c *gin.Context) []jwt.Notice {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}
	notices, err := s.jwt.ValidateFlash(token)
	if err != nil {
		return nil
	}

	return notices
}

func pendingNotices(c *gin.Context) ([]jwt.Notice, bool) {
	v, ok := c.Get(ctxPending)
	if !ok {
		return nil, false
	}
	notices, _ := v.([]jwt.Notice)

	return notices, true
}

func (s *Store) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.secure, true)
}
