package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.AuthService = (*AuthService)(nil)

// AuthService is a mock implementation of fixitquick.AuthService.
type AuthService struct {
	RegisterFn      func(ctx context.Context, reg fixitquick.Registration) (*fixitquick.User, error)
	LoginFn         func(ctx context.Context, email, password string) (*fixitquick.User, error)
	LogoutFn        func(ctx context.Context) error
	CurrentUserFn   func(ctx context.Context) (*fixitquick.User, error)
	UpdateProfileFn func(ctx context.Context, upd fixitquick.UserUpdate) (*fixitquick.User, error)
}

func (s *AuthService) Register(ctx context.Context, reg fixitquick.Registration) (*fixitquick.User, error) {
	return s.RegisterFn(ctx, reg)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*fixitquick.User, error) {
	return s.LoginFn(ctx, email, password)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.LogoutFn(ctx)
}

func (s *AuthService) CurrentUser(ctx context.Context) (*fixitquick.User, error) {
	return s.CurrentUserFn(ctx)
}

func (s *AuthService) UpdateProfile(ctx context.Context, upd fixitquick.UserUpdate) (*fixitquick.User, error) {
	return s.UpdateProfileFn(ctx, upd)
}
