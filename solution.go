package fixitquick

import "context"

// Difficulty rates how hard a solution is to carry out.
type Difficulty string

// Difficulty levels for solutions. The zero value means unrated.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Step is a single ordered instruction within a solution.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Solution represents a single troubleshooting guide with ordered steps.
// Solutions are loaded from the static catalog and never mutated.
type Solution struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	ShortDescription string     `json:"shortDescription"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	Steps            []Step     `json:"steps"`
	RelatedSolutions []string   `json:"relatedSolutions,omitempty"`
}

// Category is a grouping label for solutions.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CatalogService provides read access to the static solution catalog.
// The catalog is immutable for the lifetime of the process, so no method
// takes a context and none performs I/O.
type CatalogService interface {
	// Categories returns all categories in catalog order.
	Categories() []*Category

	// CategoryByID retrieves a category by ID.
	// Returns ENOTFOUND if the category does not exist.
	CategoryByID(id string) (*Category, error)

	// Solutions returns all solutions in catalog order.
	Solutions() []*Solution

	// SolutionByID retrieves a solution by ID.
	// Returns ENOTFOUND if the solution does not exist.
	SolutionByID(id string) (*Solution, error)

	// SolutionsByCategory returns the solutions belonging to a category,
	// in catalog order.
	SolutionsByCategory(categoryID string) []*Solution

	// Related returns the solutions referenced by a solution's related
	// list, dropping ids that are no longer in the catalog.
	Related(id string) []*Solution
}

// SearchService filters the solution catalog by substring match.
type SearchService interface {
	// Search returns solutions whose title, short description, or any
	// step title or description contains the query, case-insensitively.
	// An empty or whitespace-only query yields no results. Results
	// preserve catalog order.
	Search(ctx context.Context, query string) ([]*Solution, error)
}
