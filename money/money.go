package money

import (
	"encoding/json"
	"fmt"

	gomoney "github.com/Rhymond/go-money"
)

// Amount represents a USD monetary value with fixed decimal precision for JSON marshaling.
// Uses go-money so that values round-trip cleanly (e.g. 12.95 not 12.950000762939453).
type Amount struct {
	Value float64
}

// MarshalJSON implements json.Marshaler to output clean two-decimal format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(Format(a.Value)), nil
}

// UnmarshalJSON implements json.Unmarshaler for the plain decimal format.
func (a *Amount) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &a.Value)
}

// Round rounds a value to cents using go-money's minor-unit conversion.
func Round(value float64) float64 {
	m := gomoney.NewFromFloat(value, gomoney.USD)
	return m.AsMajorUnits()
}

// Format renders a value with exactly two decimal digits and no thousands separators.
func Format(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// NewAmount creates an Amount rounded to cents for JSON marshaling.
func NewAmount(value float64) Amount {
	return Amount{Value: Round(value)}
}

// Ptr returns a pointer to an Amount, or nil if value is nil.
func Ptr(value *float64) *Amount {
	if value == nil {
		return nil
	}
	a := NewAmount(*value)
	return &a
}
