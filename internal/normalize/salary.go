package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Salary is the joint result of normalizing the three raw salary fields.
// Currency and Frequency are only ever populated when Amount is: an offer
// with no parseable amount has no salary information at all.
type Salary struct {
	Amount         int64
	AmountValid    bool
	Currency       string
	CurrencyValid  bool
	Frequency      string
	FrequencyValid bool
}

// Supported currency codes.
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// FrequencyMensual and FrequencyUnspecified are the heuristic payment
// frequencies applied when the source doesn't state one.
const (
	FrequencyMensual     = "Mensual"
	FrequencyUnspecified = "No especificado"
)

// monthlyAmountThreshold separates monthly salaries from daily and
// hourly rates when no frequency is given. Strictly greater-than: an
// amount of exactly 200 stays unspecified.
const monthlyAmountThreshold = 200

// notSpecifiedSalary extends the general placeholder set with the
// negotiation phrases boards use instead of an amount.
var notSpecifiedSalary = map[string]bool{
	"a convenir":    true,
	"según mercado": true,
	"segun mercado": true,
	"acordar":       true,
	"negociable":    true,
}

// notSpecifiedFrequency are frequency values treated as absent.
var notSpecifiedFrequency = map[string]bool{
	"no disponible": true,
	"nan":           true,
	"acordar":       true,
	"negociable":    true,
}

var salaryNumberRe = regexp.MustCompile(`(\d+\.?\d*)`)

// ParseSalary normalizes the raw amount, currency and payment-frequency
// strings into a single joint result. An unparseable amount makes the
// whole result unknown.
func ParseSalary(rawAmount, rawCurrency, rawFrequency string) Salary {
	var out Salary

	amount, ok := parseAmount(rawAmount)
	if !ok {
		return out
	}
	out.Amount = amount
	out.AmountValid = true

	out.Currency = resolveCurrency(rawCurrency, rawAmount)
	out.CurrencyValid = true

	out.Frequency = resolveFrequency(rawFrequency, amount)
	out.FrequencyValid = true

	return out
}

// parseAmount extracts the first numeric token after stripping currency
// tokens and thousands separators, and rounds it to the nearest integer.
func parseAmount(raw string) (int64, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if notSpecified[lower] || notSpecifiedSalary[lower] {
		return 0, false
	}

	s := strings.NewReplacer("S/.", "", "USD", "", "EUR", "", ",", "").Replace(raw)
	m := salaryNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// resolveCurrency prefers an explicit currency string, then symbols in
// the raw amount, then defaults to soles.
func resolveCurrency(rawCurrency, rawAmount string) string {
	lower := strings.ToLower(strings.TrimSpace(rawCurrency))
	if !notSpecified[lower] {
		upper := strings.ToUpper(strings.TrimSpace(rawCurrency))
		switch {
		case strings.Contains(upper, "S/."), strings.Contains(upper, "SOL"), strings.Contains(upper, CurrencyPEN):
			return CurrencyPEN
		case strings.Contains(upper, "$"), strings.Contains(upper, CurrencyUSD):
			return CurrencyUSD
		}
	}

	switch {
	case strings.Contains(rawAmount, "S/."):
		return CurrencyPEN
	case strings.Contains(rawAmount, "$"):
		return CurrencyUSD
	}
	return CurrencyPEN
}

// resolveFrequency capitalizes an explicit frequency, otherwise applies
// the amount heuristic: anything strictly above the threshold is assumed
// monthly (daily and hourly rates in this market fall at or below it).
func resolveFrequency(rawFrequency string, amount int64) string {
	s := strings.TrimSpace(rawFrequency)
	if s != "" && !notSpecifiedFrequency[strings.ToLower(s)] {
		return capitalizeWord(s)
	}
	if amount > monthlyAmountThreshold {
		return FrequencyMensual
	}
	return FrequencyUnspecified
}
