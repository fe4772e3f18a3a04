package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/fixitquick/fixitquick"
	"github.com/go-playground/validator/v10"
)

// Compile-time interface verification.
var _ fixitquick.AuthService = (*AuthService)(nil)

// storedUser is the all-users list entry: the public account plus the
// obfuscated password.
type storedUser struct {
	fixitquick.User
	Password string `json:"password"`
}

// AuthService implements fixitquick.AuthService over the versioned
// accessor. The session user and the all-users list are two independently
// persisted copies; every mutating operation writes both.
type AuthService struct {
	accessor *Accessor
	broker   *Broker
	validate *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(a *Accessor, broker *Broker) *AuthService {
	return &AuthService{
		accessor: a,
		broker:   broker,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates a new account and logs it in.
func (s *AuthService) Register(ctx context.Context, reg fixitquick.Registration) (*fixitquick.User, error) {
	if err := s.validate.Struct(reg); err != nil {
		return nil, fixitquick.Errorf(fixitquick.EINVALID, "username, a valid email, and password are required")
	}

	users := Get(ctx, s.accessor, KeyUsers, []storedUser(nil))
	for _, u := range users {
		if strings.EqualFold(u.Email, reg.Email) {
			return nil, fixitquick.Errorf(fixitquick.ECONFLICT, "an account with email %q already exists", reg.Email)
		}
	}

	now := s.accessor.Now()
	user := fixitquick.User{
		ID:         fmt.Sprintf("user_%d", now.UnixMilli()),
		Username:   reg.Username,
		Email:      reg.Email,
		DateJoined: now,
	}

	users = append(users, storedUser{User: user, Password: Obfuscate(reg.Password)})
	if Set(ctx, s.accessor, KeyUsers, users, 0) {
		s.broker.Publish(KeyUsers)
	}

	s.setSession(ctx, user)
	return &user, nil
}

// Login establishes a session for the matching account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*fixitquick.User, error) {
	users := Get(ctx, s.accessor, KeyUsers, []storedUser(nil))
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && Deobfuscate(u.Password) == password {
			s.setSession(ctx, u.User)
			user := u.User
			return &user, nil
		}
	}
	return nil, fixitquick.Errorf(fixitquick.EUNAUTHORIZED, "invalid email or password")
}

// Logout clears the session. The account itself is untouched.
func (s *AuthService) Logout(ctx context.Context) error {
	if s.accessor.Remove(ctx, KeyUser) {
		s.broker.Publish(KeyUser)
	}
	return nil
}

// CurrentUser returns the session user.
func (s *AuthService) CurrentUser(ctx context.Context) (*fixitquick.User, error) {
	user := Get(ctx, s.accessor, KeyUser, fixitquick.User{})
	if user.ID == "" {
		return nil, fixitquick.Errorf(fixitquick.EUNAUTHORIZED, "not logged in")
	}
	return &user, nil
}

// UpdateProfile merges the update into both the session user and the
// matching all-users entry.
func (s *AuthService) UpdateProfile(ctx context.Context, upd fixitquick.UserUpdate) (*fixitquick.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}

	s.setSession(ctx, *user)

	users := Get(ctx, s.accessor, KeyUsers, []storedUser(nil))
	for i := range users {
		if users[i].ID == user.ID {
			users[i].Username = user.Username
			users[i].Email = user.Email
		}
	}
	if Set(ctx, s.accessor, KeyUsers, users, 0) {
		s.broker.Publish(KeyUsers)
	}

	return user, nil
}

// setSession writes the session copy of the user, without the password.
func (s *AuthService) setSession(ctx context.Context, user fixitquick.User) {
	if Set(ctx, s.accessor, KeyUser, user, 0) {
		s.broker.Publish(KeyUser)
	}
}
