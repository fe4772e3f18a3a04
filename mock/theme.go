package mock

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

var _ fixitquick.ThemeService = (*ThemeService)(nil)

// ThemeService is a mock implementation of fixitquick.ThemeService.
type ThemeService struct {
	DarkModeFn    func(ctx context.Context) bool
	SetDarkModeFn func(ctx context.Context, enabled bool)
	ToggleFn      func(ctx context.Context) bool
}

func (s *ThemeService) DarkMode(ctx context.Context) bool {
	return s.DarkModeFn(ctx)
}

func (s *ThemeService) SetDarkMode(ctx context.Context, enabled bool) {
	s.SetDarkModeFn(ctx, enabled)
}

func (s *ThemeService) Toggle(ctx context.Context) bool {
	return s.ToggleFn(ctx)
}
