package toon

import (
	"strconv"
	"strings"
)

// ============================================================
// Cell Text Encoding
// ============================================================
//
// Every leaf becomes plain text in a row. Nothing is quoted or
// escaped, so values containing ',' or a line-final '.' do not
// survive a round trip.

// NullText is the cell text written for a null or missing value.
const NullText = "null"

// canonNull returns the cell representation of null.
func canonNull() string {
	return NullText
}

// canonBool returns the cell representation of a boolean.
func canonBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// canonInt returns the base-10 integer representation.
func canonInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// canonFloat returns the shortest round-trip representation.
// Integral floats print without a fraction, -0 → 0.
func canonFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, "e") {
		// Keep plain notation for the range JSON writers use it in.
		abs := f
		if abs < 0 {
			abs = -abs
		}
		if abs >= 1e-6 && abs < 1e21 {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return trimExponent(s)
	}
	return s
}

// trimExponent drops the zero padding Go puts in exponents: 1e-07 → 1e-7.
func trimExponent(s string) string {
	e := strings.IndexByte(s, 'e')
	if e == -1 || e+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[e+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:e+2] + digits
}

// CellText converts a value to the text written in a row cell.
// Lists and records cannot live in a cell and render as null.
func CellText(v *Value) string {
	switch v.Type() {
	case TypeBool:
		return canonBool(v.boolVal)
	case TypeInt:
		return canonInt(v.intVal)
	case TypeFloat:
		return canonFloat(v.floatVal)
	case TypeStr:
		return v.strVal
	default:
		return canonNull()
	}
}

// IsScalar reports whether v can be written in a single cell.
func IsScalar(v *Value) bool {
	t := v.Type()
	return t != TypeList && t != TypeMap
}
