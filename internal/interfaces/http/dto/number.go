package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a float64 with lenient JSON decoding and NaN-safe encoding.
//
// Decoding accepts a JSON number, null, or a string that is read like a
// browser number input: the longest leading decimal literal wins and text
// without one is NaN. Encoding writes non-finite values as the strings
// "NaN", "Infinity" and "-Infinity".
type Number float64

// Float64 returns the underlying value
func (n Number) Float64() float64 {
	return float64(n)
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = Number(math.NaN())
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(ParseLenientFloat(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// Literals too large for float64 still overflow to an infinity
		if v, perr := strconv.ParseFloat(string(data), 64); perr == nil || math.IsInf(v, 0) {
			*n = Number(v)
			return nil
		}
		return fmt.Errorf("number expected, got %s", data)
	}
	*n = Number(f)
	return nil
}

var leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseLenientFloat reads the longest decimal prefix of s after leading
// whitespace. It returns NaN when s does not start with a number.
func ParseLenientFloat(s string) float64 {
	literal := leadingFloat.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if literal == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(literal, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// ParseFloat saturates to ±Inf on overflow and 0 on underflow; both are kept.
	f, _ := strconv.ParseFloat(literal, 64)
	return f
}

// FieldValue is the value of a single field edit. Text fields read Text and
// numeric fields read Number, so one payload shape serves every field kind.
type FieldValue struct {
	Text   string
	Number float64
}

// MarshalJSON writes the textual form of the value
func (v FieldValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts a string, a number, or null
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = FieldValue{Number: math.NaN()}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue{Text: s, Number: ParseLenientFloat(s)}
		return nil
	}

	var num Number
	if err := num.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("value must be a string or a number: %w", err)
	}
	*v = FieldValue{Text: string(data), Number: float64(num)}
	return nil
}
