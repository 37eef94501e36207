package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flag is a boolean the remote service may encode as 0/1, "0"/"1" or a
// JSON boolean. It always encodes back as a JSON boolean.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		return nil
	case "1", "true", `"1"`, `"true"`:
		*f = true
	case "0", "false", `"0"`, `"false"`:
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", data)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Empty is the payload type of commands whose success carries no data.
type Empty struct{}
