package gemini

import (
	"strings"

	"github.com/fixitquick/fixitquick"
)

// UserMessage translates an assistant failure into a human-readable
// message safe to show to end users, classified by message content.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission"):
		return "There was an issue with the API key configuration. Check your GEMINI_API_KEY."
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota"):
		return "The assistant is receiving too many requests right now. Please wait a moment and try again."
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "The request took too long to complete. Please try again."
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection") ||
		strings.Contains(msg, "no such host"):
		return "You appear to be offline. Please check your internet connection and try again."
	case fixitquick.ErrorCode(err) == fixitquick.EINVALID:
		return fixitquick.ErrorMessage(err)
	default:
		return "The assistant could not answer right now. Please try again."
	}
}
