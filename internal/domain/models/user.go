package models

import (
	"strings"
	"time"
)

// User is a directory record, consulted only to resolve display names for
// activity feeds.
type User struct {
	ID        string    `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UnknownUserName is the placeholder shown when a user record is missing or
// carries no usable name fields.
const UnknownUserName = "Unknown User"

// DisplayName returns "First Last", falling back to email, then to the
// UnknownUserName placeholder.
func (u *User) DisplayName() string {
	if u == nil {
		return UnknownUserName
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return UnknownUserName
}
