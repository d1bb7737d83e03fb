package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is serialised under "password"
// so blobs written by earlier versions of the app decode unchanged.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// Session is the "currently logged in" marker. It embeds the user record, so
// the stored JSON is a superset of User.
type Session struct {
	User
	ID         uuid.UUID `json:"sessionId"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// NewSession starts a session for u.
func NewSession(u User, now time.Time) *Session {
	return &Session{User: u, ID: uuid.New(), LoggedInAt: now.UTC()}
}
