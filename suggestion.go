package fixitquick

import (
	"context"
	"time"
)

// Suggestion is a user-submitted solution idea. Suggestions are stored
// separately from the catalog and are never merged into it automatically.
type Suggestion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Steps       string    `json:"steps"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	UserID      string    `json:"userId"`
	ContentHash string    `json:"contentHash"`
	SubmittedAt time.Time `json:"dateSubmitted"`
}

// SuggestionInput is the form content for submitting a suggestion.
// Name and Email are optional contact details.
type SuggestionInput struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Description string `validate:"required"`
	Steps       string `validate:"required"`
	Name        string
	Email       string `validate:"omitempty,email"`
}

// SuggestionService collects user-submitted solution suggestions.
type SuggestionService interface {
	// Submit validates and stores a suggestion, attributing it to the
	// active user or the anonymous scope. Returns EINVALID on missing
	// required fields or an unknown category, and ECONFLICT if an
	// identical suggestion (same title, category, description and steps)
	// was already submitted.
	Submit(ctx context.Context, input SuggestionInput) (*Suggestion, error)

	// List returns all stored suggestions, oldest first.
	List(ctx context.Context) ([]*Suggestion, error)
}
