package remote

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// decodedBody unwraps gzip and br encoded bodies. Identity and unknown
// encodings are returned unchanged.
func decodedBody(contentEncoding string, body io.Reader) (io.Reader, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip":
		gzipReader, err := gzip.NewReader(body)
		if err != nil {
			return nil, nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gzipReader, gzipReader.Close, nil
	case "br":
		return brotli.NewReader(body), func() error { return nil }, nil
	default:
		return body, func() error { return nil }, nil
	}
}
