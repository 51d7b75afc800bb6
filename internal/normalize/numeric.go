package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// Age parses a non-negative integer from free text such as "25",
// "25.0" or "25 años". Decimal forms are truncated. Placeholder values
// and text with no digits map to ok=false.
func Age(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if notSpecified[strings.ToLower(s)] {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			return 0, false
		}
		return int64(f), true
	}
	return firstDigitRun(s)
}

// Years parses years of experience. Like Age, but a comma is accepted
// as the decimal separator ("2,5") and decimal forms round to the
// nearest year.
func Years(raw string) (int64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if notSpecified[strings.ToLower(s)] {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			return 0, false
		}
		return int64(math.Round(f)), true
	}
	return firstDigitRun(s)
}

// firstDigitRun extracts the first contiguous run of digits.
func firstDigitRun(s string) (int64, bool) {
	m := digitRunRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
