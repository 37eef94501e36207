package application

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators shared by every command.
type Deps struct {
	Remote    ports.RemoteClient
	Session   ports.SessionStore
	Downloads ports.DownloadSink
	Logger    logrus.FieldLogger
}

func (d Deps) log() logrus.FieldLogger {
	if d.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return discard
	}
	return d.Logger
}

// Route declares one remote command: how typed arguments become a request
// and how the response becomes T.
type Route[A any, T any] struct {
	Name   string
	Method string
	// Path is the fixed resource segment, e.g. "/amostras".
	Path   string
	Params func(A) []string
	Query  func(A) url.Values
	Body   func(A) any
	// AsCurrentUser appends the logged-in user's id to the path and fails
	// with domain.ErrNoSession before any I/O when nobody is logged in.
	AsCurrentUser bool
	Unwrap        bool
	Binary        bool
	Timeout       time.Duration
	Message       string
	Decode        Decoder[T]
	// Then runs only after a successful decode.
	Then func(ctx context.Context, deps Deps, args A, value T) error
}

// Invoke runs route and wraps the result in the UI envelope.
func Invoke[A any, T any](ctx context.Context, deps Deps, route Route[A, T], args A) domain.Outcome[T] {
	value, err := Execute(ctx, deps, route, args)
	return ToOutcome(value, err, route.Message)
}

// Execute runs route and returns the typed value. Commands that post-process
// the value (downloads, settings merge) build on it.
func Execute[A any, T any](ctx context.Context, deps Deps, route Route[A, T], args A) (T, error) {
	var zero T

	req := ports.Request{
		Method:  route.Method,
		Path:    route.Path,
		Timeout: route.Timeout,
		Binary:  route.Binary,
	}
	if route.Params != nil {
		req.Params = route.Params(args)
	}
	if route.Query != nil {
		req.Query = route.Query(args)
	}
	if route.Body != nil {
		req.Body = route.Body(args)
	}

	user, loggedIn := deps.Session.CurrentUser()
	if route.AsCurrentUser {
		if !loggedIn {
			return zero, domain.ErrNoSession
		}
		req.Params = append(req.Params, strconv.FormatInt(int64(user.ID), 10))
	}
	if loggedIn {
		req.Token = user.Token
	}

	raw, callErr := deps.Remote.Call(ctx, req)
	value, err := Normalize(raw, callErr, route.Decode, NormalizeOptions{Unwrap: route.Unwrap, Binary: route.Binary})
	if err != nil {
		return zero, err
	}

	if route.Then != nil {
		if err := route.Then(ctx, deps, args, value); err != nil {
			return zero, err
		}
	}

	return value, nil
}

func idParam[ID ~int64](id ID) string {
	return strconv.FormatInt(int64(id), 10)
}
