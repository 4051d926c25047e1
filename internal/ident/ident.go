// Package ident coerces loosely typed identifier values into strict
// integer identifiers. Upstream payloads carry ids as numbers, numeric
// strings, or decorated strings like "court-12", so callers can never rely
// on implicit conversion.
package ident

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize extracts a finite integer from v. Strings are tried whole
// first, then scanned for their first contiguous run of digits. The second
// return value reports whether a usable integer was found.
func Normalize(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return normalizeFloat(float64(n))
	case float64:
		return normalizeFloat(n)
	case string:
		return FromString(n)
	case fmt.Stringer:
		return FromString(n.String())
	default:
		return 0, false
	}
}

// ID is Normalize restricted to positive identifiers. Zero and negative
// values are failures: no record in the system is addressed by them.
func ID(v any) (int64, bool) {
	n, ok := Normalize(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// FromString parses s as a whole number, then falls back to the first
// contiguous digit run. "court-42" yields 42; "abc" fails.
func FromString(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return normalizeFloat(f)
	}

	run := firstDigitRun(s)
	if run == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func normalizeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func firstDigitRun(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}
