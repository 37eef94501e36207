package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNoSession        = errors.New("no authenticated user")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid command arguments")
)

const maxPayloadExcerpt = 512

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach the server: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// StatusError is a non-2xx response. Body is best-effort text.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	status := strings.TrimSpace(fmt.Sprintf("status %d %s", e.Code, http.StatusText(e.Code)))

	body := strings.TrimSpace(e.Body)
	if body == "" {
		return "server returned " + status
	}
	return fmt.Sprintf("server returned %s: %s", status, body)
}

type DecodeError struct {
	Detail  string
	Payload string
	Cause   error
}

func NewDecodeError(detail string, payload []byte, cause error) *DecodeError {
	return &DecodeError{Detail: detail, Payload: excerpt(payload), Cause: cause}
}

func (e *DecodeError) Error() string {
	message := "could not decode the server response"
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	if e.Payload != "" {
		message += fmt.Sprintf(" (payload: %s)", e.Payload)
	}
	return message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// BusinessError is a 2xx response whose payload carried success=false.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func excerpt(payload []byte) string {
	text := strings.TrimSpace(string(payload))
	if len(text) <= maxPayloadExcerpt {
		return text
	}
	return text[:maxPayloadExcerpt] + "...(truncated)"
}
