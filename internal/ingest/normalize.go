package ingest

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate decodes a raw coordinate value from the trip file.
//
// The source encodes decimal degrees as a concatenated digit string without a
// decimal point ("4815577" means 48.15577), so the point is inserted after the
// first two digits before parsing. Values that already contain a decimal point
// are parsed as-is.
//
// Malformed input (fewer than three digits, non-digit characters) yields NaN,
// the flagged-invalid value. Callers must tolerate NaN; the numeric range
// filters downstream exclude those rows.
func ParseCoordinate(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}

	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	if strings.Contains(s, ".") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		if neg {
			return -v
		}
		return v
	}

	if len(s) < 3 {
		return math.NaN()
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return math.NaN()
		}
	}

	v, err := strconv.ParseFloat(s[:2]+"."+s[2:], 64)
	if err != nil {
		return math.NaN()
	}
	if neg {
		return -v
	}
	return v
}

// parseFlag decodes the boolean station flags, which appear as 1/0 or
// true/false depending on the export
func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes":
		return true
	}
	return false
}
