// Package format provides Rupiah currency, date/time, and identifier
// formatting shared across receipt rendering and the HTTP layer.
package format

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Rupiah renders an integer amount with "." as the thousands separator and no
// decimal places, e.g. 1234567 -> "1.234.567". A leading minus sign passes
// through untouched.
func Rupiah(n int64) string {
	s := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	return sign + b.String()
}

// RupiahRound rounds a float amount to the nearest integer and formats it as
// Rupiah. NaN and infinities are treated as 0, matching the form behavior
// where any non-numeric input displays as "0".
func RupiahRound(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return Rupiah(int64(math.Round(f)))
}

// Date formats a time as DD/MM/YYYY with zero-padded day and month.
func Date(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// Clock formats a time as HH:MM:SS with zero-padded fields.
func Clock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// NewStationID returns a collision-resistant identifier for a new station
// profile, combining a time component and a random component. The ID is only
// ever compared for equality, never parsed.
func NewStationID() string {
	return fmt.Sprintf("spbu-%d-%09d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
}

// NewSequenceNumber returns a uniformly random 6-digit transaction number in
// the range 100000-999999 inclusive.
func NewSequenceNumber() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

// ParseAmount parses a user-entered numeric field, coercing empty or
// non-numeric input to 0. Field inputs arrive as free text from the form, so
// parse failures are a normal case, not an error.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
