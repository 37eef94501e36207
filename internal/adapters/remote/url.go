package remote

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/labdesk/internal/domain"
)

// BuildURL joins the resolved base, the fixed resource path, the escaped
// path parameters and the encoded query.
func BuildURL(baseURL string, path string, params []string, query url.Values) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""

	var builder strings.Builder
	builder.WriteString(strings.TrimRight(parsed.String(), "/"))
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		builder.WriteString("/")
		builder.WriteString(trimmed)
	}

	for i, param := range params {
		if strings.TrimSpace(param) == "" {
			return "", fmt.Errorf("%w: path parameter %d is empty", domain.ErrInvalidArguments, i)
		}
		builder.WriteString("/")
		builder.WriteString(url.PathEscape(param))
	}

	if encoded := query.Encode(); encoded != "" {
		builder.WriteString("?")
		builder.WriteString(encoded)
	}

	return builder.String(), nil
}
