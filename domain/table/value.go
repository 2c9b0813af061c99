package table

import (
	"fmt"
	"math"
	"time"
)

// ValueType defines the storage type for scalar cell values
type ValueType string

const (
	TypeNumeric ValueType = "numeric"
	TypeText    ValueType = "text"
	TypeDate    ValueType = "date"
	TypeBoolean ValueType = "boolean"
	TypeMissing ValueType = "missing"
)

// Value represents a typed scalar cell with deterministic classification
type Value struct {
	Type       ValueType  `json:"type"`
	TextVal    *string    `json:"text_val,omitempty"`
	NumericVal *float64   `json:"numeric_val,omitempty"`
	BooleanVal *bool      `json:"boolean_val,omitempty"`
	DateVal    *time.Time `json:"date_val,omitempty"`

	// Raw preserves the original cell spelling when the value came from a
	// parsed file ("TRUE", "$1,200", "01/02/2023"). Empty for values built
	// directly from typed constructors.
	Raw string `json:"raw,omitempty"`
}

// WithRaw returns a copy of the value carrying its original cell spelling
func (v Value) WithRaw(raw string) Value {
	v.Raw = raw
	return v
}

// RawOrString returns the original spelling when known, else the display form
func (v Value) RawOrString() string {
	if v.Raw != "" {
		return v.Raw
	}
	return v.String()
}

// NewTextValue creates a text value; empty strings become missing
func NewTextValue(s string) Value {
	if s == "" {
		return Value{Type: TypeMissing}
	}
	return Value{Type: TypeText, TextVal: &s}
}

// NewNumericValue creates a numeric value; NaN becomes missing
func NewNumericValue(n float64) Value {
	if math.IsNaN(n) {
		return Value{Type: TypeMissing}
	}
	return Value{Type: TypeNumeric, NumericVal: &n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: TypeBoolean, BooleanVal: &b}
}

// NewDateValue creates a date value
func NewDateValue(t time.Time) Value {
	return Value{Type: TypeDate, DateVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: TypeMissing}
}

// IsMissing reports whether the value is absent
func (v Value) IsMissing() bool {
	return v.Type == TypeMissing
}

// Key returns a canonical bucket key for distinct counting. Values of
// different types never collide, so a numeric 1 and the text "1" stay
// distinct.
func (v Value) Key() string {
	return string(v.Type) + "|" + v.String()
}

// String returns the display representation of the value
func (v Value) String() string {
	switch v.Type {
	case TypeText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case TypeNumeric:
		if v.NumericVal != nil {
			return formatNumeric(*v.NumericVal)
		}
	case TypeBoolean:
		if v.BooleanVal != nil {
			return fmt.Sprintf("%t", *v.BooleanVal)
		}
	case TypeDate:
		if v.DateVal != nil {
			return v.DateVal.Format(time.RFC3339)
		}
	case TypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// formatNumeric renders integers without a trailing ".000000"
func formatNumeric(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
