package context

import (
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key holding the caller's *entity.Session.
const KeySession ContextKey = "session"

// SetSession stores the request-owned session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session loaded for this request.
// A request that never went through the session middleware gets a fresh anonymous session.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok && session != nil {
		return session
	}

	session := &entity.Session{}
	SetSession(c, session)

	return session
}
