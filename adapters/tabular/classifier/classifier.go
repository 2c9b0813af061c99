package classifier

import (
	"math"
	"strconv"
	"strings"
	"time"

	"goqa/domain/table"
)

// Classifier converts raw cell strings into typed values with deterministic
// rules. Classification order is numeric, boolean, date, text; the first
// matching type wins.
type Classifier struct {
	config Config
}

// Config defines the classification rules
type Config struct {
	TrimCells       bool `json:"trim_cells"`        // trim whitespace before classifying
	CurrencyNumbers bool `json:"currency_numbers"`  // strip $/€/£/¥ and % before numeric parse
	UnixTimestamps  bool `json:"unix_timestamps"`   // treat plausible Unix epochs as dates
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TrimCells:       true,
		CurrencyNumbers: true,
		UnixTimestamps:  false,
	}
}

// New creates a classifier with the given config
func New(config Config) *Classifier {
	return &Classifier{config: config}
}

// dateFormats are the layouts tried in order when classifying date-like cells
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// booleanAliases maps the accepted textual boolean spellings
var booleanAliases = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true, "on": true,
	"false": false, "f": false, "no": false, "n": false, "off": false,
}

// missingPlaceholders are strings that commonly stand in for absent values.
// Classification keeps them as text; VerifyConsistency flags them.
var missingPlaceholders = map[string]struct{}{
	"na": {}, "n/a": {}, "null": {}, "none": {}, "-": {}, "missing": {},
}

// Classify converts a raw cell string into a typed value
func (c *Classifier) Classify(raw string) table.Value {
	val := raw
	if c.config.TrimCells {
		val = strings.TrimSpace(val)
	}
	if val == "" {
		return table.NewMissingValue()
	}

	if num, ok := c.tryParseNumeric(val); ok {
		return table.NewNumericValue(num).WithRaw(val)
	}
	if b, ok := ParseBooleanAlias(val); ok {
		return table.NewBooleanValue(b).WithRaw(val)
	}
	if t, ok := c.tryParseDate(val); ok {
		return table.NewDateValue(t).WithRaw(val)
	}
	return table.NewTextValue(val)
}

// ClassifyAll converts a slice of raw cells into typed values
func (c *Classifier) ClassifyAll(raw []string) []table.Value {
	values := make([]table.Value, len(raw))
	for i, cell := range raw {
		values[i] = c.Classify(cell)
	}
	return values
}

// tryParseNumeric attempts to parse as numeric with strict rules.
// Handles parentheses for negatives, currency symbols, and thousands
// separators the way spreadsheet exports write them.
func (c *Classifier) tryParseNumeric(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	// Parentheses for negative numbers: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimPrefix(cleanVal, "(")
		cleanVal = strings.TrimSuffix(cleanVal, ")")
		isNegative = true
	}

	if c.config.CurrencyNumbers {
		for _, symbol := range []string{"$", "€", "£", "¥"} {
			cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
		}
		cleanVal = strings.ReplaceAll(cleanVal, "%", "")
		cleanVal = strings.TrimSpace(cleanVal)
	}

	// Thousands separators
	if strings.Contains(cleanVal, ",") && strings.Contains(cleanVal, ".") {
		cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	} else if strings.Count(cleanVal, ",") == 1 && !strings.Contains(cleanVal, ".") {
		// Lone comma is treated as a decimal separator (European exports)
		cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
	} else {
		cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	}

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// tryParseDate attempts to parse as a date with multiple formats
func (c *Classifier) tryParseDate(strVal string) (time.Time, bool) {
	if t, ok := ParseDate(strVal); ok {
		return t, true
	}

	if c.config.UnixTimestamps {
		if unixVal, err := strconv.ParseInt(strVal, 10, 64); err == nil {
			if unixVal > 0 && unixVal < 2147483647 {
				return time.Unix(unixVal, 0).UTC(), true
			}
		}
	}

	return time.Time{}, false
}

// ParseDate parses a cell against the known date layouts
func ParseDate(strVal string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, strVal); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MatchDateLayout returns the layout a date-like cell matches, for format
// variance detection
func MatchDateLayout(strVal string) (string, bool) {
	for _, format := range dateFormats {
		if _, err := time.Parse(format, strVal); err == nil {
			return format, true
		}
	}
	return "", false
}

// ParseBooleanAlias resolves textual boolean spellings (TRUE, Yes, n, off...)
func ParseBooleanAlias(strVal string) (bool, bool) {
	b, ok := booleanAliases[strings.ToLower(strings.TrimSpace(strVal))]
	return b, ok
}

// IsBooleanAlias reports whether a cell spells a boolean, including the
// numeric encodings 1/0 that only count as booleans in mixed-alias columns
func IsBooleanAlias(strVal string) bool {
	clean := strings.ToLower(strings.TrimSpace(strVal))
	if _, ok := booleanAliases[clean]; ok {
		return true
	}
	return clean == "1" || clean == "0" || clean == "1.0" || clean == "0.0"
}

// IsMissingPlaceholder reports whether a cell is a string stand-in for a
// missing value ("NA", "null", "-", ...)
func IsMissingPlaceholder(strVal string) bool {
	_, ok := missingPlaceholders[strings.ToLower(strings.TrimSpace(strVal))]
	return ok
}
