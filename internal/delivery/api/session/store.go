// Package session loads and persists the caller-owned session for each request.
package session

import (
	"net/http"

	"accounts/config"
	"accounts/internal/domain/entity"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const userIDKey = "userId"

// Store reads and writes the session attached to an HTTP exchange.
type Store interface {
	// Load returns the caller's session. A missing or unreadable cookie yields an anonymous session and an error.
	Load(c echo.Context) (*entity.Session, error)
	// Save writes the session back to the response.
	Save(c echo.Context, session *entity.Session) error
}

type cookieStore struct {
	name  string
	store *sessions.CookieStore
}

// NewCookieStore returns a Store backed by signed cookies.
func NewCookieStore(cfg *config.Config) Store {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		Secure:   cfg.Session.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &cookieStore{
		name:  cfg.Session.CookieName,
		store: store,
	}
}

func (s *cookieStore) Load(c echo.Context) (*entity.Session, error) {
	raw, err := s.store.Get(c.Request(), s.name)
	if err != nil {
		return &entity.Session{}, errors.Wrap(err, "failed to decode session cookie")
	}

	userID, _ := raw.Values[userIDKey].(int64)

	return &entity.Session{UserID: userID}, nil
}

func (s *cookieStore) Save(c echo.Context, session *entity.Session) error {
	// Get returns a fresh session alongside the decode error, which is fine to overwrite.
	raw, _ := s.store.Get(c.Request(), s.name)

	if session.SignedIn() {
		raw.Values[userIDKey] = session.UserID
	} else {
		delete(raw.Values, userIDKey)
	}

	if err := raw.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to write session cookie")
	}

	return nil
}
