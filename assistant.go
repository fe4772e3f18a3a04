package fixitquick

import (
	"context"
	"regexp"
	"time"
)

// Message roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Topic is a coarse classification of what a chat message is about.
type Topic string

// Topics recognized by DetectTopic.
const (
	TopicNetwork  Topic = "network"
	TopicSecurity Topic = "security"
	TopicSoftware Topic = "software"
	TopicHardware Topic = "hardware"
	TopicGeneral  Topic = "general"
)

// Message is a single chat exchange entry.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Topic     Topic     `json:"category,omitempty"`
}

// Assistant answers tech support questions, optionally using the rolling
// conversation history for context. Implementations call a remote chat
// completion service and are expected to enforce their own timeouts.
type Assistant interface {
	// Reply answers a question. The history, if any, is ordered oldest
	// first and may be windowed by the implementation. Returns
	// EUNAVAILABLE for transient transport failures and EINTERNAL for
	// malformed or empty responses.
	Reply(ctx context.Context, history []Message, question string) (string, error)
}

// ChatHistoryService persists the rolling chat transcript. Implementations
// prune the transcript on write: only messages from the last 24 hours are
// kept, at most 20 of them, and over-long contents are truncated.
type ChatHistoryService interface {
	// Messages returns the stored transcript, oldest first.
	Messages(ctx context.Context) ([]Message, error)

	// Append adds messages to the transcript and prunes it.
	Append(ctx context.Context, msgs ...Message) error

	// Clear discards the transcript.
	Clear(ctx context.Context) error
}

var topicPatterns = []struct {
	topic Topic
	re    *regexp.Regexp
}{
	{TopicNetwork, regexp.MustCompile(`(?i)\b(wifi|network|ethernet|connection|internet|dns|ip)\b`)},
	{TopicSecurity, regexp.MustCompile(`(?i)\b(virus|password|hack|security|privacy|firewall|encrypt)\b`)},
	{TopicSoftware, regexp.MustCompile(`(?i)\b(windows|software|app|program|install|update|driver|os)\b`)},
	{TopicHardware, regexp.MustCompile(`(?i)\b(hardware|keyboard|mouse|screen|battery|power|printer|device)\b`)},
}

// DetectTopic classifies message content by keyword. The first matching
// topic wins; unmatched content is TopicGeneral.
func DetectTopic(content string) Topic {
	for _, p := range topicPatterns {
		if p.re.MatchString(content) {
			return p.topic
		}
	}
	return TopicGeneral
}
