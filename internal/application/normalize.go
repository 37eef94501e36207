package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/tidwall/gjson"
)

const (
	rejectionFallback = "the server rejected the request"
	maxStatusBody     = 512
)

// Decoder turns the selected payload bytes into T.
type Decoder[T any] func(payload []byte) (T, error)

type NormalizeOptions struct {
	// Unwrap decodes the value at the envelope's "data" field instead of
	// the whole body.
	Unwrap bool
	// Binary skips the inner envelope probe; the body is an opaque file.
	Binary bool
}

type validator interface {
	Validate() error
}

// Normalize maps one remote call to a typed value or a structured error.
// A transport failure is returned as-is and the body is never inspected.
func Normalize[T any](raw ports.RawResponse, callErr error, decode Decoder[T], opts NormalizeOptions) (T, error) {
	var zero T
	if callErr != nil {
		return zero, callErr
	}

	if !raw.OK() {
		return zero, &domain.StatusError{Code: raw.StatusCode, Status: raw.Status, Body: statusBody(raw.Body)}
	}

	if !opts.Binary {
		if message, rejected := innerRejection(raw.Body); rejected {
			return zero, &domain.BusinessError{Message: message}
		}
	}

	payload := raw.Body
	if opts.Unwrap && !opts.Binary {
		data := gjson.GetBytes(raw.Body, "data")
		if !data.Exists() {
			return zero, domain.NewDecodeError("response has no data field", raw.Body, nil)
		}
		payload = []byte(data.Raw)
	}

	if decode == nil {
		decode = DecodeJSON[T]
	}
	return decode(payload)
}

// ToOutcome is the single place where a command result becomes the UI
// envelope.
func ToOutcome[T any](value T, err error, message string) domain.Outcome[T] {
	if err != nil {
		return domain.Fail[T](err)
	}
	if _, empty := any(value).(domain.Empty); empty {
		return domain.Succeed[T](message, nil)
	}
	return domain.Succeed(message, &value)
}

// DecodeJSON strictly decodes payload into T and validates the result.
// domain.Empty accepts any payload, including none.
func DecodeJSON[T any](payload []byte) (T, error) {
	var value T
	if _, empty := any(value).(domain.Empty); empty {
		return value, nil
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return value, domain.NewDecodeError("empty response body", nil, nil)
	}

	if err := json.Unmarshal(trimmed, &value); err != nil {
		return value, domain.NewDecodeError(err.Error(), trimmed, err)
	}

	if err := validate(value); err != nil {
		return value, domain.NewDecodeError(err.Error(), trimmed, err)
	}
	return value, nil
}

// RawBytes is the decoder of binary routes.
func RawBytes(payload []byte) ([]byte, error) {
	return payload, nil
}

func validate(value any) error {
	if v, ok := value.(validator); ok {
		return v.Validate()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	for i := 0; i < rv.Len(); i++ {
		item, ok := rv.Index(i).Interface().(validator)
		if !ok {
			return nil
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// innerRejection reports whether a 2xx body is an envelope whose success
// flag is the boolean false.
func innerRejection(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !gjson.ValidBytes(trimmed) {
		return "", false
	}

	if gjson.GetBytes(trimmed, "success").Type != gjson.False {
		return "", false
	}

	if message := envelopeMessage(trimmed); message != "" {
		return message, true
	}
	return rejectionFallback, true
}

func envelopeMessage(body []byte) string {
	for _, field := range []string{"message", "error"} {
		result := gjson.GetBytes(body, field)
		if result.Type == gjson.String {
			if message := strings.TrimSpace(result.String()); message != "" {
				return message
			}
		}
	}
	return ""
}

func statusBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' && gjson.ValidBytes(trimmed) {
		if message := envelopeMessage(trimmed); message != "" {
			return message
		}
	}

	text := strings.TrimSpace(string(trimmed))
	if len(text) > maxStatusBody {
		return text[:maxStatusBody] + "...(truncated)"
	}
	return text
}
