package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The market endpoints are not consistent about scalar encodings:
// priceoverview reports "success": true while itemordershistogram reports
// "success": 1, paging fields flip between numbers and numeric strings,
// and volumes come back as comma-grouped strings ("1,234"). The types
// below absorb those quirks so response structs can stay plain.

// IntBool decodes JSON true/false as well as 1/0.
type IntBool bool

func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("types: cannot decode %q as IntBool", data)
	}
	return nil
}

func (b IntBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// FlexInt decodes a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("types: cannot decode %q as FlexInt: %w", data, err)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Volume decodes a trade volume, which Steam reports as a comma-grouped
// numeric string.
type Volume int64

func (v *Volume) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return fmt.Errorf("types: cannot decode %q as Volume: %w", data, err)
	}
	*v = Volume(n)
	return nil
}

func (v Volume) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(v))
}
