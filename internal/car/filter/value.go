package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value holds a descriptor value as text. It decodes from any JSON scalar:
// numbers and booleans keep their literal form and null becomes "".
type Value string

// String returns the textual value
func (v Value) String() string {
	return string(v)
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	case '{', '[':
		return fmt.Errorf("filter value must be a scalar, got %s", data)
	default:
		*v = Value(data)
	}
	return nil
}
