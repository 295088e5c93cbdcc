package entity

// Session is the per-request, caller-owned session state.
// A zero UserID means nobody is signed in.
type Session struct {
	UserID int64
}

// SignedIn reports whether the session carries a user identifier.
func (s *Session) SignedIn() bool {
	return s != nil && s.UserID != 0
}
