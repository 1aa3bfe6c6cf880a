package textclean

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is returned when a stored value has nothing worth displaying
const NotAvailable = "N/A"

// MaxCount caps parsed counts so sums of counts cannot overflow
const MaxCount = math.MaxInt32

var printer = message.NewPrinter(language.English)

var (
	artifactReplacer = strings.NewReplacer("{", "", "}", "", `"`, "", "'", "", `\`, "")
	quoteReplacer    = strings.NewReplacer("{", "", "}", "", `"`, "", "'", "")
	colonSpacing     = regexp.MustCompile(`:\s*`)
	commaSpacing     = regexp.MustCompile(`,\s*`)
	leadingInteger   = regexp.MustCompile(`^[+-]?\d+`)
)

// Normalize cleans a raw stored string for display. JSON artifacts and
// escape characters are removed, and flattened "key: value" pairs are
// reduced to their values. It never fails: empty results become "N/A".
func Normalize(raw string) (out string) {
	if strings.TrimSpace(raw) == "" {
		return NotAvailable
	}

	defer func() {
		if r := recover(); r != nil {
			out = stripQuotes(raw)
		}
	}()

	cleaned := artifactReplacer.Replace(raw)
	cleaned = colonSpacing.ReplaceAllString(cleaned, ": ")
	cleaned = commaSpacing.ReplaceAllString(cleaned, ", ")
	cleaned = strings.TrimSpace(cleaned)

	if strings.Contains(cleaned, ":") {
		if values := pairValues(cleaned); len(values) > 0 {
			return strings.Join(values, ", ")
		}
	}

	if cleaned == "" {
		return NotAvailable
	}
	return cleaned
}

// pairValues keeps the value half of every comma separated "key: value"
// segment, dropping blanks and serialized null markers
func pairValues(cleaned string) []string {
	var values []string
	for _, segment := range strings.Split(cleaned, ",") {
		value := strings.TrimSpace(segment)
		if _, after, found := strings.Cut(value, ":"); found {
			value = strings.TrimSpace(after)
		}
		if value == "" || value == "null" || value == "undefined" {
			continue
		}
		values = append(values, value)
	}
	return values
}

func stripQuotes(raw string) string {
	if cleaned := strings.TrimSpace(quoteReplacer.Replace(raw)); cleaned != "" {
		return cleaned
	}
	return NotAvailable
}

// NormalizeAll normalizes every item and drops the ones with nothing to show
func NormalizeAll(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if value := Normalize(item); value != NotAvailable {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}

// DecodeList reads a list-valued column. Values are stored either as a JSON
// array or as a comma separated string; a strict JSON array decode is tried
// first and anything else is split on commas. Empty input yields an empty list.
func DecodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var decoded []interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		items := make([]string, 0, len(decoded))
		for _, element := range decoded {
			if item := strings.TrimSpace(elementString(element)); item != "" {
				items = append(items, item)
			}
		}
		return items
	}

	items := []string{}
	for _, segment := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(segment); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func elementString(element interface{}) string {
	switch v := element.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// ParseCount coerces a stored count to a non-negative integer. Like a lenient
// integer parse it reads the leading digits ("12 jobs" is 12, "3.9" is 3);
// negative or unparseable input is 0 and anything above MaxCount is MaxCount.
func ParseCount(raw string) int {
	digits := leadingInteger.FindString(strings.TrimSpace(raw))
	if digits == "" {
		return 0
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(digits, "-") {
		return MaxCount
	}
	if err != nil || n < 0 {
		return 0
	}
	if n > MaxCount {
		return MaxCount
	}
	return int(n)
}

// Thousands renders n with comma group separators, e.g. 1234567 as "1,234,567"
func Thousands(n int) string {
	return printer.Sprintf("%d", n)
}

// Compact renders large counts the way dashboard tiles show them: 1.2M, 3.4K
func Compact(n int) string {
	switch {
	case n >= 1_000_000:
		return printer.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return printer.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return Thousands(n)
	}
}
