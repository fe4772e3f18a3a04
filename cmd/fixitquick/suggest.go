package main

import (
	"fmt"

	"github.com/fixitquick/fixitquick"
)

// SuggestCmd submits a new troubleshooting topic suggestion.
type SuggestCmd struct {
	Title       string `help:"Suggested solution title."`
	Category    string `help:"Category the suggestion belongs to."`
	Description string `help:"What problem the solution addresses."`
	Steps       string `help:"Suggested troubleshooting steps."`
	Name        string `help:"Optional contact name."`
	Email       string `help:"Optional contact email."`

	List bool `help:"List stored suggestions instead of submitting."`
}

func (c *SuggestCmd) Run(deps *Dependencies) error {
	if c.List {
		suggestions, err := deps.Suggestions.List(deps.Ctx)
		if err != nil {
			return fmt.Errorf("failed to list suggestions: %w", err)
		}
		if len(suggestions) == 0 {
			fmt.Fprintln(deps.Stdout, "No suggestions submitted yet.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", s.SubmittedAt.Format("2006-01-02"), s.Category, s.Title)
		}
		return nil
	}

	suggestion, err := deps.Suggestions.Submit(deps.Ctx, fixitquick.SuggestionInput{
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Steps:       c.Steps,
		Name:        c.Name,
		Email:       c.Email,
	})
	if err != nil {
		return fmt.Errorf("suggestion rejected: %s", fixitquick.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Thanks! Suggestion %s recorded.\n", suggestion.ID)
	return nil
}
