package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/session"
)

const (
	CtxSession = "session"

	msgLoginRequired = "Debe iniciar sesión."
)

func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := store.Load(c); ok {
			c.Set(CtxSession, s)
		}

		c.Next()
	}
}

// RequireSession aborts anonymous requests with a redirect to loginPath.
func RequireSession(flashes *flash.Store, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			flashes.Add(c, flash.Warning, msgLoginRequired)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)

	return s, ok
}
