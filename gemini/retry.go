package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/fixitquick/fixitquick"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between reply attempts:
// 1s, 2s, 4s, 8s (five total attempts).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
}

// ReplyWithRetry asks the assistant with exponential backoff on transient
// failures. The logger function, if provided, is called for each retry
// attempt.
func ReplyWithRetry(ctx context.Context, assistant fixitquick.Assistant, history []fixitquick.Message, question string, logger LogFunc) (string, error) {
	return ReplyWithRetryDelays(ctx, assistant, history, question, logger, DefaultRetryDelays())
}

// ReplyWithRetryDelays is like ReplyWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func ReplyWithRetryDelays(ctx context.Context, assistant fixitquick.Assistant, history []fixitquick.Message, question string, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := assistant.Reply(ctx, history, question)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		// Only transient failures are worth another attempt.
		if !Retryable(err) {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry (attempt %d of %d): %v", attempt+2, maxAttempts, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Retryable reports whether an assistant failure is transient, classified
// by message content: timeouts, network errors, and rate limiting.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if fixitquick.ErrorCode(err) == fixitquick.EUNAVAILABLE {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"timeout", "deadline exceeded", "network", "connection", "429", "rate limit", "unavailable", "503"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
