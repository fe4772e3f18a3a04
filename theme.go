package fixitquick

import "context"

// ThemeService persists the dark-mode preference. Storage failures degrade
// to the in-memory value and are never surfaced.
type ThemeService interface {
	// DarkMode reports whether dark mode is enabled.
	DarkMode(ctx context.Context) bool

	// SetDarkMode records the preference.
	SetDarkMode(ctx context.Context, enabled bool)

	// Toggle flips the preference and returns the new value.
	Toggle(ctx context.Context) bool
}
