package skill

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Level is a mastery measurement in [0, 1], where 0 is no knowledge and 1 is
// perfect knowledge. The zero value is a valid level of 0.
type Level struct {
	value float64
}

// NewLevel clamps v into [0, 1]. NaN is rejected.
func NewLevel(v float64) (Level, error) {
	if math.IsNaN(v) {
		return Level{}, fmt.Errorf("%w: level constructed with non-numeric value NaN", ErrTypeMismatch)
	}
	return Level{value: math.Max(0, math.Min(1, v))}, nil
}

// MustLevel is like NewLevel but panics on error. Intended for fixtures.
func MustLevel(v float64) Level {
	l, err := NewLevel(v)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLevel creates a Level from a dynamically typed value. Numeric types,
// json.Number and numeric strings are accepted.
func ParseLevel(v any) (Level, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := parseFloat(string(n))
		if err != nil {
			return Level{}, nonNumeric(v)
		}
		f = parsed
	case string:
		parsed, err := parseFloat(strings.TrimSpace(n))
		if err != nil {
			return Level{}, nonNumeric(v)
		}
		f = parsed
	default:
		return Level{}, nonNumeric(v)
	}
	return NewLevel(f)
}

// parseFloat accepts out-of-range numbers; ParseFloat already returns
// ±Inf or ±0 for them, which NewLevel clamps.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

func nonNumeric(v any) error {
	return fmt.Errorf("%w: level constructed with non-numeric value %v (%T)", ErrTypeMismatch, v, v)
}

// Value returns the clamped mastery value.
func (l Level) Value() float64 { return l.value }

func (l Level) String() string { return strconv.FormatFloat(l.value, 'f', -1, 64) }
