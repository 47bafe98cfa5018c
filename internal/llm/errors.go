package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Providers translate SDK failures into the types below so callers (and
// the retry decorator) never inspect SDK error types.

// ErrRateLimit indicates the provider throttled the request (HTTP 429).
type ErrRateLimit struct {
	// RetryAfter is the server's requested wait, zero when not given.
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("completion rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("completion rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error   { return e.Err }
func (e *ErrRateLimit) Temporary() bool { return true }

// ErrInvalidResponse indicates the reply was empty or did not conform to
// the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid completion response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error   { return e.Err }
func (e *ErrInvalidResponse) Temporary() bool { return true }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider unavailable: %v", e.Err)
	}
	return "completion provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error   { return e.Err }
func (e *ErrProviderUnavailable) Temporary() bool { return true }

// ErrMaxTokensExceeded indicates a structured reply was cut off at the
// token budget. Raw-text replies are returned truncated instead.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "completion truncated: max tokens exceeded"
}

func (e *ErrMaxTokensExceeded) Temporary() bool { return false }

// ErrRefused indicates the model or the provider's safety filter declined
// to answer.
type ErrRefused struct {
	Reason string
}

func (e *ErrRefused) Error() string {
	if e.Reason == "" {
		return "completion refused"
	}
	return "completion refused: " + e.Reason
}

func (e *ErrRefused) Temporary() bool { return false }

// ErrRejected indicates the provider refused the request itself (bad key,
// unknown model, malformed input). Repeating it cannot help.
type ErrRejected struct {
	Status int
	Err    error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("completion request rejected (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrRejected) Unwrap() error   { return e.Err }
func (e *ErrRejected) Temporary() bool { return false }

// errorForStatus maps an HTTP status from any provider SDK onto the error
// types above. status 0 means the request never got a response.
func errorForStatus(status int, header http.Header, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: parseRetryAfter(header, time.Now()), Err: err}
	case status == 0, status == http.StatusRequestTimeout, status >= 500:
		return &ErrProviderUnavailable{Err: err}
	default:
		return &ErrRejected{Status: status, Err: err}
	}
}

// parseRetryAfter reads a Retry-After header in either delta-seconds or
// HTTP-date form. Missing or unparseable values yield zero.
func parseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// Retryable reports whether repeating the same request could succeed.
// Cancellation is final; unclassified errors (network resets and the like)
// count as transient.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var t interface{ Temporary() bool }
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return true
}
