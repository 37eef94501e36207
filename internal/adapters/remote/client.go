package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout = 15 * time.Second

	maxJSONResponseBytes   = 8 << 20
	maxBinaryResponseBytes = 64 << 20

	RequestIDHeader = "X-Request-Id"
)

var ErrResponseTooLarge = errors.New("response body too large")

// Client issues one HTTP request per call against the resolved API base.
// It never retries.
type Client struct {
	endpoints  ports.EndpointResolver
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     logrus.FieldLogger
	requestID  func() string
	jsonLimit  int64
	fileLimit  int64
}

var _ ports.RemoteClient = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithBodyLimits caps JSON and binary response bodies. Non-positive values
// keep the defaults.
func WithBodyLimits(jsonBytes int64, binaryBytes int64) Option {
	return func(c *Client) {
		if jsonBytes > 0 {
			c.jsonLimit = jsonBytes
		}
		if binaryBytes > 0 {
			c.fileLimit = binaryBytes
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(endpoints ports.EndpointResolver, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	client := &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		userAgent:  "labdesk",
		logger:     discard,
		requestID:  func() string { return uuid.NewString() },
		jsonLimit:  maxJSONResponseBytes,
		fileLimit:  maxBinaryResponseBytes,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) Call(ctx context.Context, req ports.Request) (ports.RawResponse, error) {
	endpoint, err := BuildURL(c.endpoints.APIBase(), req.Path, req.Params, req.Query)
	if err != nil {
		return ports.RawResponse{}, &domain.TransportError{Method: req.Method, URL: req.Path, Cause: err}
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return ports.RawResponse{}, fmt.Errorf("%w: encode request body: %v", domain.ErrInvalidArguments, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.Method, endpoint, body)
	if err != nil {
		return ports.RawResponse{}, &domain.TransportError{Method: req.Method, URL: endpoint, Cause: fmt.Errorf("create request: %w", err)}
	}

	requestID := c.requestID()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip, br")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	log := c.logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"url":        endpoint,
		"request_id": requestID,
	})

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("remote call failed")
		return ports.RawResponse{}, &domain.TransportError{Method: req.Method, URL: endpoint, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw := ports.RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header.Clone(),
	}

	payload, err := c.readBody(resp, req.Binary)
	if err != nil {
		if raw.OK() {
			log.WithError(err).Warn("remote response body unreadable")
			return ports.RawResponse{}, &domain.TransportError{Method: req.Method, URL: endpoint, Cause: fmt.Errorf("read response: %w", err)}
		}
		payload = nil
	}
	raw.Body = payload
	raw.Header.Del("Content-Encoding")

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(payload),
		"duration": time.Since(started).Round(time.Millisecond),
	}).Debug("remote call completed")

	return raw, nil
}

func (c *Client) readBody(resp *http.Response, binary bool) ([]byte, error) {
	limit := c.jsonLimit
	if binary {
		limit = c.fileLimit
	}

	reader, closeReader, err := decodedBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeReader() }()

	payload, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) > limit {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrResponseTooLarge, limit)
	}
	return payload, nil
}

func (c *Client) requestContext(ctx context.Context, override time.Duration) (context.Context, context.CancelFunc) {
	timeout := c.timeout
	if override > 0 {
		timeout = override
	}

	return context.WithTimeout(ctx, timeout)
}
