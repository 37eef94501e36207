package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	defaultRetryDelay       = 5 * time.Second
	defaultSessionPoll      = time.Second
	maxMessageBytes         = 64 << 10
)

// ErrSessionChanged ends a connection whose bearer token no longer matches
// the session user.
var ErrSessionChanged = errors.New("session changed")

// Listener receives pushed notifications and keeps the latest one in the
// session store.
type Listener struct {
	endpoints  ports.EndpointResolver
	session    ports.SessionStore
	logger     logrus.FieldLogger
	dialer      *websocket.Dialer
	retryDelay  time.Duration
	sessionPoll time.Duration
}

type Option func(*Listener)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Listener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(l *Listener) {
		if delay > 0 {
			l.retryDelay = delay
		}
	}
}

// WithSessionPoll sets how often an open connection compares its token with
// the session user.
func WithSessionPoll(interval time.Duration) Option {
	return func(l *Listener) {
		if interval > 0 {
			l.sessionPoll = interval
		}
	}
}

func NewListener(endpoints ports.EndpointResolver, session ports.SessionStore, opts ...Option) *Listener {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	listener := &Listener{
		endpoints:   endpoints,
		session:     session,
		logger:      discard,
		dialer:      &websocket.Dialer{HandshakeTimeout: defaultHandshakeTimeout, Proxy: http.ProxyFromEnvironment},
		retryDelay:  defaultRetryDelay,
		sessionPoll: defaultSessionPoll,
	}
	for _, opt := range opts {
		opt(listener)
	}

	return listener
}

// Run keeps a connection open until ctx is cancelled, redialing after the
// retry delay whenever the connection drops. A login or logout redials at
// once so the socket always carries the current token.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.Listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrSessionChanged) {
			l.logger.Info("session changed, redialing notification socket")
			continue
		}
		l.logger.WithError(err).WithField("retry_in", l.retryDelay).Warn("notification socket closed")

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Listen dials the resolved notification endpoint once and stores every
// valid notification until the connection ends, ctx is cancelled or the
// session token changes.
func (l *Listener) Listen(ctx context.Context) error {
	endpoint := l.endpoints.NotificationEndpoint()

	token := l.sessionToken()
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := l.dialer.DialContext(ctx, endpoint, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial notification socket %s: %w", endpoint, err)
	}
	conn.SetReadLimit(maxMessageBytes)

	var sessionChanged atomic.Bool
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(l.sessionPoll)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
				_ = conn.Close()
				return
			case <-done:
				_ = conn.Close()
				return
			case <-ticker.C:
				if l.sessionToken() != token {
					sessionChanged.Store(true)
					_ = conn.Close()
					return
				}
			}
		}
	}()

	log := l.logger.WithField("endpoint", endpoint)
	log.Info("notification socket connected")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if sessionChanged.Load() {
				return ErrSessionChanged
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errors.New("notification socket closed by server")
			}
			return fmt.Errorf("read notification: %w", err)
		}

		notification, err := decodeNotification(message)
		if err != nil {
			log.WithError(err).Warn("notification ignored")
			continue
		}

		l.session.SaveNotification(notification)
		log.WithFields(logrus.Fields{
			"notification_id": notification.ID,
			"kind":            notification.Kind,
		}).Info("notification received")
	}
}

func (l *Listener) sessionToken() string {
	if user, ok := l.session.CurrentUser(); ok {
		return user.Token
	}
	return ""
}

func decodeNotification(message []byte) (domain.Notification, error) {
	var notification domain.Notification
	if err := json.Unmarshal(message, &notification); err != nil {
		return domain.Notification{}, fmt.Errorf("decode notification: %w", err)
	}
	if err := notification.Validate(); err != nil {
		return domain.Notification{}, err
	}
	return notification, nil
}
