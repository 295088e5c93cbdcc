package middleware

import (
	"log/slog"

	"accounts/internal/delivery/api/session"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware attaches the caller's session to every request and guards signed-in routes.
type SessionMiddleware struct {
	store  session.Store
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(store session.Store, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, logger: logger}
}

// Load reads the session cookie. An unreadable cookie is treated as anonymous.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.store.Load(c)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring unreadable session cookie", slog.Any("error", err))
		}
		deliverycontext.SetSession(c, sess)

		return next(c)
	}
}

// RequireSignedIn rejects anonymous callers with 403.
// It must be used AFTER the Load middleware.
func (m *SessionMiddleware) RequireSignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetSession(c).SignedIn() {
			return domainerrors.ErrNotSignedIn
		}

		return next(c)
	}
}
