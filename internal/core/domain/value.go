package domain

import (
	"math"
	"strconv"
)

// ValueKind discriminates the variants of a Value.
type ValueKind int

const (
	// KindMissing marks an absent element (empty field or explicit null).
	KindMissing ValueKind = iota

	// KindNumber marks a real number.
	KindNumber

	// KindText marks a free-form string.
	KindText
)

// Value is one element of a mixed sequence: missing, a number, or text.
// It replaces dynamic typing with an explicit tagged union so every
// conversion is a visible, fallible step.
//
// The zero Value is missing.
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// NewNumber wraps a float64 as a Value.
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// NewText wraps a string as a Value.
// The empty string is a missing marker, not text.
func NewText(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsMissing reports whether the value counts as missing:
// the missing marker itself, or a number holding NaN.
func (v Value) IsMissing() bool {
	if v.kind == KindMissing {
		return true
	}
	return v.kind == KindNumber && math.IsNaN(v.num)
}

// Number returns the numeric payload. The second return is false
// unless the value is a number.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the text payload. The second return is false
// unless the value is text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Int attempts integer conversion of the value. Numbers are truncated
// toward zero; text must be a base-10 integer literal. Missing values
// and non-integer text do not convert.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return int64(v.num), true
	case KindText:
		n, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String renders the value for display. Numbers use the shortest
// representation that round-trips; missing renders as "None".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return "None"
	}
}
