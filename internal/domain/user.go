package domain

import "time"

// User represents the authenticated account holder as returned by the
// remote API.
type User struct {
	ID       string
	FullName string
	Email    string
}

// Session is the client-side record of an authenticated session. It is
// created on successful login and destroyed on logout.
type Session struct {
	Token     string
	User      User
	CreatedAt time.Time
}

// IsValid checks if the session carries a usable bearer credential.
func (s Session) IsValid() bool {
	return s.Token != ""
}
