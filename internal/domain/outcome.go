package domain

import (
	"encoding/json"
	"errors"
)

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailure OutcomeStatus = "failure"
)

// FailureKind tells the UI which layer rejected a command. It is informative
// only; Message is the contract.
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureDecode    FailureKind = "decode"
	FailureBusiness  FailureKind = "business"
	FailureSession   FailureKind = "session"
	FailureArgument  FailureKind = "argument"
	FailureLocal     FailureKind = "local"
)

// Outcome is the envelope every command returns. Exactly one variant is
// active: build it with Succeed or Fail, never as a literal.
type Outcome[T any] struct {
	status  OutcomeStatus
	message string
	data    *T
	kind    FailureKind
}

func Succeed[T any](message string, data *T) Outcome[T] {
	return Outcome[T]{status: OutcomeSuccess, message: message, data: data}
}

// Fail converts err into a failure outcome. When err wraps one of the
// structured error kinds, the message of that kind is used so wrapping
// context does not leak into the UI.
func Fail[T any](err error) Outcome[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}

	kind, message := classify(err)
	return Outcome[T]{status: OutcomeFailure, message: message, kind: kind}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.status == OutcomeSuccess
}

func (o Outcome[T]) Status() OutcomeStatus {
	return o.status
}

func (o Outcome[T]) Message() string {
	return o.message
}

func (o Outcome[T]) Kind() FailureKind {
	return o.kind
}

// Data returns the decoded payload. ok is false on failures and on
// successes that carry no payload.
func (o Outcome[T]) Data() (value T, ok bool) {
	if o.status != OutcomeSuccess || o.data == nil {
		return value, false
	}
	return *o.data, true
}

type successWire[T any] struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
	Data    *T            `json:"data"`
}

type failureWire struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
	Kind    FailureKind   `json:"kind"`
}

func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.status == OutcomeSuccess {
		return json.Marshal(successWire[T]{Status: o.status, Message: o.message, Data: o.data})
	}

	status := o.status
	if status == "" {
		status = OutcomeFailure
	}
	return json.Marshal(failureWire{Status: status, Message: o.message, Kind: o.kind})
}

func classify(err error) (FailureKind, string) {
	var transportErr *TransportError
	var statusErr *StatusError
	var decodeErr *DecodeError
	var businessErr *BusinessError

	switch {
	case errors.As(err, &transportErr):
		return FailureTransport, transportErr.Error()
	case errors.As(err, &statusErr):
		return FailureStatus, statusErr.Error()
	case errors.As(err, &decodeErr):
		return FailureDecode, decodeErr.Error()
	case errors.As(err, &businessErr):
		return FailureBusiness, businessErr.Error()
	case errors.Is(err, ErrNoSession):
		return FailureSession, err.Error()
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrInvalidArguments):
		return FailureArgument, err.Error()
	default:
		return FailureLocal, err.Error()
	}
}
