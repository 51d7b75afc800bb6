package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical output layout for publication dates.
const ISODate = "2006-01-02"

// genericLayouts are tried before the Spanish-phrase ladder. They cover
// the already-machine-formatted dates some boards emit.
var genericLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// spanishMonths maps lowercase month names to their number.
var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// Relative-date phrases. Inputs are lowercased before matching, and the
// character class tolerates both accented and unaccented spellings.
var (
	haceDiasRe    = regexp.MustCompile(`hace (\d+) d[ií]as?`)
	haceHorasRe   = regexp.MustCompile(`hace (\d+) (?:horas?|minutos?)`)
	diaMesAnioRe  = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})`)
	diaMesRe      = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-záéíóúñ]+)`)
)

// maxFutureDays bounds year inference for "D de MONTH" dates: offers are
// never published far in the future, so a date further out than this is
// assumed to belong to the previous year.
const maxFutureDays = 60

// Date resolves a raw publication-date string to ISO YYYY-MM-DD.
// now is the batch timestamp; all relative phrases resolve against it.
func Date(raw string, now time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if notSpecified[s] {
		return "", false
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODate), true
		}
	}

	if strings.Contains(s, "hoy") {
		return now.Format(ISODate), true
	}
	if strings.Contains(s, "ayer") {
		return now.AddDate(0, 0, -1).Format(ISODate), true
	}

	if m := haceDiasRe.FindStringSubmatch(s); m != nil {
		days, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -days).Format(ISODate), true
	}
	if haceHorasRe.MatchString(s) {
		// Same-day granularity for hours and minutes.
		return now.Format(ISODate), true
	}

	if m := diaMesAnioRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if month, ok := spanishMonths[m[2]]; ok {
			return calendarDate(year, month, day)
		}
	}

	if m := diaMesRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := spanishMonths[m[2]]
		if !ok {
			return "", false
		}
		year := now.Year()
		iso, ok := calendarDate(year, month, day)
		if !ok {
			return "", false
		}
		proposed, _ := time.Parse(ISODate, iso)
		if proposed.After(now.AddDate(0, 0, maxFutureDays)) {
			return calendarDate(year-1, month, day)
		}
		return iso, true
	}

	return "", false
}

// calendarDate formats a date, rejecting values time.Date would silently
// normalize (such as day 31 of a 30-day month).
func calendarDate(year int, month time.Month, day int) (string, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", false
	}
	return t.Format(ISODate), true
}
