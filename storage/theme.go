package storage

import (
	"context"

	"github.com/fixitquick/fixitquick"
)

// Compile-time interface verification.
var _ fixitquick.ThemeService = (*ThemeService)(nil)

// ThemeService implements fixitquick.ThemeService using a reactive binding,
// so any other consumer of the theme key observes toggles immediately.
type ThemeService struct {
	binding *Binding[bool]
}

// NewThemeService creates a new ThemeService seeded from storage.
func NewThemeService(ctx context.Context, a *Accessor, broker *Broker) *ThemeService {
	return &ThemeService{binding: NewBinding(ctx, a, broker, KeyTheme, false)}
}

// DarkMode reports whether dark mode is enabled.
func (s *ThemeService) DarkMode(ctx context.Context) bool {
	return s.binding.Get()
}

// SetDarkMode records the preference.
func (s *ThemeService) SetDarkMode(ctx context.Context, enabled bool) {
	s.binding.Set(ctx, enabled)
}

// Toggle flips the preference and returns the new value.
func (s *ThemeService) Toggle(ctx context.Context) bool {
	s.binding.Update(ctx, func(enabled bool) bool { return !enabled })
	return s.binding.Get()
}

// Close releases the underlying binding's subscription.
func (s *ThemeService) Close() {
	s.binding.Close()
}
