package models

import "time"

// User represents an account entity used for authentication and ownership
// of documents. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of user fields that API responses expose.
func (u User) Public() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username}
}

// UserInfo is the public view of a user returned by login, signup and /api/me.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
