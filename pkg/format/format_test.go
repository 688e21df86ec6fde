package format

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"below thousand", 999, "999"},
		{"exact thousand", 1000, "1.000"},
		{"six digits", 122000, "122.000"},
		{"seven digits", 1234567, "1.234.567"},
		{"negative", -612000, "-612.000"},
		{"negative small", -5, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rupiah(tt.input))
		})
	}
}

func TestRupiahRound(t *testing.T) {
	assert.Equal(t, "12.240", RupiahRound(12240.0))
	assert.Equal(t, "12.240", RupiahRound(12239.6))
	assert.Equal(t, "0", RupiahRound(math.NaN()))
	assert.Equal(t, "0", RupiahRound(math.Inf(1)))
	assert.Equal(t, "0", RupiahRound(math.Inf(-1)))
	assert.Equal(t, "0", RupiahRound(0.4))
}

func TestDateAndClock(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 3, 0, time.Local)

	assert.Equal(t, "07/03/2025", Date(ts))
	assert.Equal(t, "09:05:03", Clock(ts))
}

func TestNewSequenceNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	for i := 0; i < 100; i++ {
		seq := NewSequenceNumber()
		assert.Regexp(t, pattern, seq)
	}
}

func TestNewStationID(t *testing.T) {
	pattern := regexp.MustCompile(`^spbu-\d+-\d{9}$`)
	assert.Regexp(t, pattern, NewStationID())

	// Two consecutive IDs must differ.
	assert.NotEqual(t, NewStationID(), NewStationID())
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 20.5, ParseAmount("20.5"))
	assert.Equal(t, 200000.0, ParseAmount(" 200000 "))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
	assert.Equal(t, 0.0, ParseAmount("Inf"))
	assert.Equal(t, -3.0, ParseAmount("-3"))
}
