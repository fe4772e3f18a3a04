package storage

// Prefix namespaces every key this application owns, except per-solution
// feedback votes (see FeedbackKey).
const Prefix = "fixitquick"

// Fixed storage keys.
const (
	KeyUser             = Prefix + "-user"
	KeyUsers            = Prefix + "-users"
	KeyTheme            = Prefix + "-theme"
	KeyRecentlyViewed   = Prefix + "-recently-viewed"
	KeyFeedbackComments = Prefix + "-feedback-comments"
	KeySuggestions      = Prefix + "-suggested-solutions"
	KeyChatHistory      = Prefix + "-chat-history"
	KeyStorageVersion   = Prefix + "-storage-version"
)

// BookmarksKey returns the bookmark list key for a user scope.
func BookmarksKey(userID string) string {
	return Prefix + "-bookmarks-" + userID
}

// FeedbackKey returns the vote key for a solution. Votes are stored outside
// the application prefix as bare strings, so ClearApp leaves them behind.
func FeedbackKey(solutionID string) string {
	return "feedback-" + solutionID
}
