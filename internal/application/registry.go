package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/sirupsen/logrus"
)

// Result is the type-erased outcome handed to the UI bridge and the CLI.
// Every domain.Outcome satisfies it.
type Result interface {
	json.Marshaler
	IsSuccess() bool
	Status() domain.OutcomeStatus
	Message() string
	Kind() domain.FailureKind
}

type handler func(ctx context.Context, args json.RawMessage) Result

// Registry maps command names to typed handlers. It is filled once at
// startup and read concurrently afterwards.
type Registry struct {
	deps     Deps
	logger   logrus.FieldLogger
	observer ports.CommandObserver

	mu       sync.RWMutex
	handlers map[string]handler
}

type RegistryOption func(*Registry)

func WithRegistryLogger(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithObserver(observer ports.CommandObserver) RegistryOption {
	return func(r *Registry) {
		r.observer = observer
	}
}

func NewRegistry(deps Deps, opts ...RegistryOption) *Registry {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	registry := &Registry{
		deps:     deps,
		logger:   discard,
		handlers: make(map[string]handler),
	}
	for _, opt := range opts {
		opt(registry)
	}
	if registry.deps.Logger == nil {
		registry.deps.Logger = registry.logger
	}

	return registry
}

// Register exposes route under its name.
func Register[A any, T any](r *Registry, route Route[A, T]) {
	RegisterFunc(r, route.Name, func(ctx context.Context, deps Deps, args A) domain.Outcome[T] {
		return Invoke(ctx, deps, route, args)
	})
}

// RegisterFunc exposes a hand-written command. Arguments are decoded from
// JSON into A; unknown fields are rejected.
func RegisterFunc[A any, T any](r *Registry, name string, fn func(ctx context.Context, deps Deps, args A) domain.Outcome[T]) {
	r.add(name, func(ctx context.Context, raw json.RawMessage) Result {
		args, err := decodeArgs[A](raw)
		if err != nil {
			return domain.Fail[T](err)
		}
		return fn(ctx, r.deps, args)
	})
}

func (r *Registry) add(name string, h handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic("application: command name is required")
	}
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("application: command %q registered twice", name))
	}
	r.handlers[name] = h
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[name]
	return ok
}

// Invoke runs the named command. It never returns nil and never panics:
// unknown names and malformed arguments are argument failures, and a panic
// inside a handler is reported as a decode failure.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (result Result) {
	started := time.Now()
	log := r.logger.WithField("command", name)

	defer func() {
		if recovered := recover(); recovered != nil {
			log.WithField("panic", recovered).Error("command panicked")
			result = domain.Fail[domain.Empty](domain.NewDecodeError(fmt.Sprintf("command %s failed unexpectedly: %v", name, recovered), nil, nil))
		}

		elapsed := time.Since(started)
		if r.observer != nil {
			r.observer.ObserveCommand(name, result.Status(), result.Kind(), elapsed)
		}

		entry := log.WithFields(logrus.Fields{
			"status":   result.Status(),
			"duration": elapsed.Round(time.Millisecond),
		})
		if result.IsSuccess() {
			entry.Debug("command completed")
			return
		}
		entry.WithFields(logrus.Fields{
			"kind":  result.Kind(),
			"error": result.Message(),
		}).Info("command failed")
	}()

	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return domain.Fail[domain.Empty](fmt.Errorf("%w: %q", domain.ErrUnknownCommand, name))
	}

	return h(ctx, args)
}

func decodeArgs[A any](raw json.RawMessage) (A, error) {
	var args A

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return args, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&args); err != nil {
		return args, fmt.Errorf("%w: %v", domain.ErrInvalidArguments, err)
	}
	if decoder.More() {
		return args, fmt.Errorf("%w: trailing data after arguments", domain.ErrInvalidArguments)
	}
	return args, nil
}
