package handlers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a latitude or longitude sent either as a JSON number or as a
// numeric string. Anything else decodes to an absent value instead of failing.
// swagger:model Coordinate
type Coordinate struct {
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	c.Value = nil

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	c.Value = &f
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if c.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*c.Value)
}
