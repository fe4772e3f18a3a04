package fixitquick

import (
	"context"
	"time"
)

// User represents a locally registered account. Accounts exist only on this
// machine; passwords are obfuscated, not hashed, and provide no real
// security.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"dateJoined"`
}

// Registration is the input for creating a new account.
type Registration struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=1"`
}

// UserUpdate represents fields that can be updated on the current user's
// profile.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// AuthService manages local accounts and the login session. The session
// user and the all-users list are persisted independently; every mutating
// operation keeps the two copies consistent.
type AuthService interface {
	// Register creates a new account and logs it in.
	// Returns EINVALID on missing or malformed fields and ECONFLICT if
	// the email is already registered (compared case-insensitively).
	Register(ctx context.Context, reg Registration) (*User, error)

	// Login establishes a session for the account matching the email
	// (case-insensitively) and password. Returns EUNAUTHORIZED if no
	// account matches.
	Login(ctx context.Context, email, password string) (*User, error)

	// Logout clears the session. The account itself is untouched.
	Logout(ctx context.Context) error

	// CurrentUser returns the session user.
	// Returns EUNAUTHORIZED if no user is logged in.
	CurrentUser(ctx context.Context) (*User, error)

	// UpdateProfile merges the update into both the session user and the
	// matching all-users entry. Returns EUNAUTHORIZED if no user is
	// logged in.
	UpdateProfile(ctx context.Context, upd UserUpdate) (*User, error)
}
