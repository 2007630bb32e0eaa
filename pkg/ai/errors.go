package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a pipeline or provider failure. Callers branch on the
// kind, not on the message.
type ErrorKind string

const (
	KindInputInvalid  ErrorKind = "input_invalid"
	KindConfigMissing ErrorKind = "configuration_missing"
	KindAuthFailed    ErrorKind = "model_auth_failed"
	KindModelNotFound ErrorKind = "model_not_found"
	KindRateLimited   ErrorKind = "model_rate_limited"
	KindBadRequest    ErrorKind = "model_bad_request"
	KindNetwork       ErrorKind = "network_failure"
	KindUnclassified  ErrorKind = "unclassified"
)

// Error is a classified failure with a safe user-facing message. Detail holds
// raw provider output and is only surfaced in development responses.
type Error struct {
	Kind    ErrorKind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// HTTPStatus maps the error kind to the response status the delivery layer uses.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInputInvalid, KindBadRequest:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewInputError builds an InputInvalid error detected before any model call.
func NewInputError(message string) *Error {
	return &Error{Kind: KindInputInvalid, Message: message}
}

// ErrNotConfigured is returned when the required model credential is absent.
func ErrNotConfigured() *Error {
	return &Error{Kind: KindConfigMissing, Message: "AI API key is not configured"}
}

// ProviderError is a non-2xx response from a model provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%d): %s", e.StatusCode, e.Body)
}

// Classify converts an arbitrary failure into a taxonomy Error. Provider
// status codes are mapped first; message substring matching is the fallback.
// The priority order matters: some provider messages match several categories,
// so auth and model-identity checks run before generic request-validity ones.
func Classify(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		switch pe.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return authError()
		case http.StatusNotFound:
			return &Error{Kind: KindModelNotFound, Message: "AI model not found. Check the configured model name.", Detail: pe.Body}
		case http.StatusTooManyRequests:
			return rateLimitError()
		case http.StatusBadRequest:
			return &Error{Kind: KindBadRequest, Message: "input validation failed", Detail: pe.Body}
		}
		return classifyMessage(pe.Body)
	}

	return classifyMessage(err.Error())
}

func classifyMessage(msg string) *Error {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "api key") ||
		strings.Contains(lower, "authentication") ||
		strings.Contains(lower, "unauthorized") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "UNAUTHENTICATED"):
		return authError()

	case (strings.Contains(lower, "model") && strings.Contains(lower, "not found")) ||
		strings.Contains(lower, "model_not_found") ||
		strings.Contains(lower, "invalid model") ||
		strings.Contains(msg, "404"):
		return &Error{Kind: KindModelNotFound, Message: "AI model not found. Check the configured model name.", Detail: msg}

	case strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		(strings.Contains(lower, "quota") && strings.Contains(lower, "exceeded")) ||
		(strings.Contains(lower, "rate limit") && strings.Contains(lower, "exceeded")):
		return rateLimitError()

	case strings.Contains(msg, "400") ||
		strings.Contains(msg, "INVALID_ARGUMENT") ||
		strings.Contains(lower, "validation") ||
		strings.Contains(msg, "Bad Request"):
		return &Error{Kind: KindBadRequest, Message: "input validation failed", Detail: msg}

	case strings.Contains(lower, "network") ||
		strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "dial tcp"):
		return &Error{Kind: KindNetwork, Message: "network error while reaching the AI provider"}
	}

	return &Error{Kind: KindUnclassified, Message: "AI processing failed", Detail: msg}
}

// Auth errors name the variable to check but never echo the credential itself.
func authError() *Error {
	return &Error{Kind: KindAuthFailed, Message: "AI API key is invalid. Check the GEMINI_API_KEY environment variable."}
}

func rateLimitError() *Error {
	return &Error{Kind: KindRateLimited, Message: "AI quota exceeded. Please try again shortly."}
}
