package ports

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Request describes one call to the remote service. Path is the fixed
// resource segment; Params are appended as escaped path segments.
type Request struct {
	Method  string
	Path    string
	Params  []string
	Query   url.Values
	Body    any
	Token   string
	Timeout time.Duration
	// Binary responses (downloads) are read with a larger limit.
	Binary bool
}

type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (r RawResponse) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type RemoteClient interface {
	Call(ctx context.Context, req Request) (RawResponse, error)
}
