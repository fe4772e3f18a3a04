package storage

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fixitquick/fixitquick"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ fixitquick.SuggestionService = (*SuggestionService)(nil)

// SuggestionService implements fixitquick.SuggestionService over the
// versioned accessor. Suggestions accumulate in a single list and are
// never merged into the catalog.
type SuggestionService struct {
	accessor *Accessor
	broker   *Broker
	catalog  fixitquick.CatalogService
	auth     fixitquick.AuthService
	validate *validator.Validate
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(a *Accessor, broker *Broker, catalog fixitquick.CatalogService, auth fixitquick.AuthService) *SuggestionService {
	return &SuggestionService{
		accessor: a,
		broker:   broker,
		catalog:  catalog,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// contentHash fingerprints the submitted content for duplicate detection.
func contentHash(input fixitquick.SuggestionInput) string {
	h := xxhash.New()
	for _, field := range []string{input.Title, input.Category, input.Description, input.Steps} {
		h.WriteString(field)
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Submit validates and stores a suggestion.
func (s *SuggestionService) Submit(ctx context.Context, input fixitquick.SuggestionInput) (*fixitquick.Suggestion, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fixitquick.Errorf(fixitquick.EINVALID, "title, category, description and steps are required")
	}
	if _, err := s.catalog.CategoryByID(input.Category); err != nil {
		return nil, fixitquick.Errorf(fixitquick.EINVALID, "unknown category %q", input.Category)
	}

	hash := contentHash(input)
	suggestions := Get(ctx, s.accessor, KeySuggestions, []*fixitquick.Suggestion(nil))
	for _, existing := range suggestions {
		if existing.ContentHash == hash {
			return nil, fixitquick.Errorf(fixitquick.ECONFLICT, "an identical suggestion was already submitted")
		}
	}

	userID := fixitquick.AnonymousUserID
	if user, err := s.auth.CurrentUser(ctx); err == nil {
		userID = user.ID
	}

	suggestion := &fixitquick.Suggestion{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Steps:       input.Steps,
		Name:        input.Name,
		Email:       input.Email,
		UserID:      userID,
		ContentHash: hash,
		SubmittedAt: s.accessor.Now(),
	}

	if Set(ctx, s.accessor, KeySuggestions, append(suggestions, suggestion), 0) {
		s.broker.Publish(KeySuggestions)
	}
	return suggestion, nil
}

// List returns all stored suggestions, oldest first.
func (s *SuggestionService) List(ctx context.Context) ([]*fixitquick.Suggestion, error) {
	return Get(ctx, s.accessor, KeySuggestions, []*fixitquick.Suggestion(nil)), nil
}
