package application

import (
	"net/url"
	"strconv"
	"strings"
)

// query collects optional filters; absent and blank values are skipped so
// the request only carries what the caller set.
type query url.Values

func newQuery() query {
	return query{}
}

func (q query) Add(key string, value *string) query {
	if value != nil && strings.TrimSpace(*value) != "" {
		url.Values(q).Set(key, strings.TrimSpace(*value))
	}
	return q
}

func (q query) AddInt(key string, value *int64) query {
	if value != nil {
		url.Values(q).Set(key, strconv.FormatInt(*value, 10))
	}
	return q
}

func (q query) AddBool(key string, value *bool) query {
	if value != nil {
		url.Values(q).Set(key, strconv.FormatBool(*value))
	}
	return q
}

func (q query) Values() url.Values {
	return url.Values(q)
}
