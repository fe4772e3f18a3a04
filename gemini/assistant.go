// Package gemini implements the chat assistant using Google Gemini.
package gemini

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/fixitquick/fixitquick"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// historyWindow caps how many prior messages are sent for context.
const historyWindow = 8

// systemInstruction is the fixed tech support persona.
const systemInstruction = `You are an advanced tech support AI assistant for the FixItQuick platform, specializing in helping students resolve computer-related issues. Your responses should be:
1. Clear and concise with step-by-step solutions
2. Focused on practical fixes for hardware issues (keyboard, display, audio, wifi, battery)
3. Software troubleshooting (OS, applications, drivers)
4. Security-conscious and up-to-date with best practices
5. Friendly and patient, using simple terms for technical concepts
If the query is unrelated to tech support, politely redirect to relevant tech topics.
Always verify the safety and appropriateness of suggested solutions.`

// Response bounds. Replies outside them are rejected as malformed.
const (
	maxResponseChars = 10000
	minResponseWords = 3
)

var controlChars = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)

// Ensure Assistant implements fixitquick.Assistant at compile time.
var _ fixitquick.Assistant = (*Assistant)(nil)

// Assistant implements fixitquick.Assistant using Google Gemini.
type Assistant struct {
	client  *genai.Client
	limiter *rate.Limiter

	// Timeout bounds each remote call. Defaults to 30 seconds.
	Timeout time.Duration
}

// NewAssistant creates a new Assistant. Calls are rate limited to one per
// second with no bursting.
func NewAssistant(client *genai.Client) *Assistant {
	return &Assistant{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(1.0), 1),
		Timeout: 30 * time.Second,
	}
}

// Reply answers a tech support question using the rolling history for
// context.
func (a *Assistant) Reply(ctx context.Context, history []fixitquick.Message, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fixitquick.Errorf(fixitquick.EINVALID, "question required")
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	result, err := a.client.Models.GenerateContent(ctx, model,
		BuildContents(history, question), BuildConfig())
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fixitquick.Errorf(fixitquick.EUNAVAILABLE, "the request took too long to complete")
		}
		return "", err
	}
	if result == nil {
		return "", fixitquick.Errorf(fixitquick.EINTERNAL, "gemini returned nil result")
	}

	return sanitizeResponse(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	topK := float32(40)
	topP := float32(0.95)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:     &temp,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: 800,
	}
}

// BuildContents maps the rolling history plus the new question into the
// Gemini chat format. Only the last historyWindow messages are sent.
func BuildContents(history []fixitquick.Message, question string) []*genai.Content {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		content := &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: msg.Content}},
		}
		if msg.Role == fixitquick.RoleBot {
			content.Role = "model"
		}
		contents = append(contents, content)
	}

	return append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: question}},
	})
}

// sanitizeResponse strips control characters and rejects empty, too-short,
// or oversized replies.
func sanitizeResponse(text string) (string, error) {
	text = strings.TrimSpace(controlChars.ReplaceAllString(text, ""))

	if text == "" {
		return "", fixitquick.Errorf(fixitquick.EINTERNAL, "received empty response")
	}
	if len(text) > maxResponseChars {
		return "", fixitquick.Errorf(fixitquick.EINTERNAL, "response too long")
	}
	if len(strings.Fields(text)) < minResponseWords {
		return "", fixitquick.Errorf(fixitquick.EINTERNAL, "response too short or invalid")
	}
	return text, nil
}
