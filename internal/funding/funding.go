package funding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/textclean"
)

// unitPatterns are applied in this order and every match is collected;
// the first token collected wins, so the order is part of the contract.
var unitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s*(billion|b\b)`),
	regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s*(million|m\b)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([bm])\b`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(billion|million)`),
}

var (
	bareNumber = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)`)

	dollarAmount  = regexp.MustCompile(`\$[\d.,]+[BMKk]?`)
	percentAmount = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	unitAmount    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*([BMK]illion|[BMK]|million|billion|thousand)`)
	tokenPattern  = regexp.MustCompile(`^\$(\d+(?:\.\d+)?)([KMB])$`)
)

var multipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// Parse extracts a canonical funding token ("$1.5B", "$250M", "$500K") from
// free-form funding text. It reports false when no number can be found.
func Parse(raw string) (string, bool) {
	candidates := Candidates(raw)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

// ParseList parses funding data stored as a list by joining its entries
// with spaces first.
func ParseList(entries []string) (string, bool) {
	return Parse(strings.Join(entries, " "))
}

// Candidates returns every token the unit patterns produce, in pattern
// order, or the single fallback guess when none of them match. The same
// amount may appear more than once when several patterns accept it.
func Candidates(raw string) []string {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return nil
	}

	var tokens []string
	for _, pattern := range unitPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if token, ok := tokenFor(match[1], match[2]); ok {
				tokens = append(tokens, token)
			}
		}
	}

	if len(tokens) == 0 {
		if token, ok := guessToken(text); ok {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func tokenFor(number, unit string) (string, bool) {
	value, ok := formatNumber(number)
	if !ok {
		return "", false
	}

	switch {
	case strings.HasPrefix(unit, "b"):
		return "$" + value + "B", true
	case strings.HasPrefix(unit, "m"):
		return "$" + value + "M", true
	}
	return "", false
}

// guessToken labels the first number in the text when no explicit unit was
// attached to it. Any b or m anywhere in the text counts as context.
func guessToken(text string) (string, bool) {
	match := bareNumber.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	value, ok := formatNumber(match[1])
	if !ok {
		return "", false
	}

	switch {
	case strings.Contains(text, "billion") || strings.Contains(text, "b"):
		return "$" + value + "B", true
	case strings.Contains(text, "million") || strings.Contains(text, "m"):
		return "$" + value + "M", true
	}

	n, _ := strconv.ParseFloat(match[1], 64)
	if n > 1000 {
		return "$" + value + "M", true
	}
	return "$" + value + "K", true
}

// formatNumber prints a decimal in its shortest form: "1.50" is "1.5"
// and "007" is "7"
func formatNumber(number string) (string, bool) {
	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(n, 'f', -1, 64), true
}

// Amount converts a canonical token back to dollars, e.g. "$1.5B" to 1.5e9
func Amount(token string) (float64, bool) {
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return n * multipliers[match[2]], true
}

// CostImpact extracts the headline figure shown for cost savings: a literal
// dollar amount, then a percentage, then a number with a spelled out unit.
// Anything else is returned normalized for display.
func CostImpact(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return textclean.NotAvailable
	}

	if amount := dollarAmount.FindString(raw); amount != "" {
		return amount
	}

	if match := percentAmount.FindStringSubmatch(raw); match != nil {
		return match[1] + "%"
	}

	if match := unitAmount.FindStringSubmatch(raw); match != nil {
		amount, unit := match[1], strings.ToLower(match[2])
		switch {
		case strings.Contains(unit, "b"):
			return "$" + amount + "B"
		case strings.Contains(unit, "m"):
			return "$" + amount + "M"
		default:
			return "$" + amount + "K"
		}
	}

	return textclean.Normalize(raw)
}
