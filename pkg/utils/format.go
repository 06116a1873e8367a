package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var numberPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders a stat compactly: 1500 -> "1.5K", 2500000 -> "2.5M".
// Values below a thousand keep locale formatting. Missing or unparsable input yields "0".
func FormatNumber(value interface{}) string {
	v, ok := ParseNumber(value)
	if !ok {
		return "0"
	}

	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return abbreviate(v/1e9) + "B"
	case abs >= 1e6:
		return abbreviate(v/1e6) + "M"
	case abs >= 1e3:
		return abbreviate(v/1e3) + "K"
	}

	return numberPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPercent renders a rate with exactly one decimal: "4.567" -> "4.6%".
func FormatPercent(value interface{}) string {
	v, ok := ParseNumber(value)
	if !ok {
		return "0%"
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// ParseNumber accepts Go numbers, numeric strings (commas and a trailing % are
// ignored) and fmt.Stringer values holding numeric text.
func ParseNumber(value interface{}) (float64, bool) {
	var v float64
	switch typed := value.(type) {
	case nil:
		return 0, false
	case int:
		v = float64(typed)
	case int32:
		v = float64(typed)
	case int64:
		v = float64(typed)
	case uint:
		v = float64(typed)
	case uint64:
		v = float64(typed)
	case float32:
		v = float64(typed)
	case float64:
		v = typed
	case string:
		return parseNumericString(typed)
	case fmt.Stringer:
		return parseNumericString(typed.String())
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseNumericString(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	cleaned = strings.TrimSuffix(cleaned, "%")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func abbreviate(v float64) string {
	formatted := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(formatted, ".0")
}

// ContrastColor picks black or white text for the given background colour.
// Malformed input falls back to black.
func ContrastColor(hex string) string {
	r, g, b, ok := ParseHexColor(hex)
	if !ok {
		return "#000000"
	}

	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance >= 128 {
		return "#000000"
	}
	return "#FFFFFF"
}

// ParseHexColor reads "#RGB" or "#RRGGBB" (the leading # is optional).
func ParseHexColor(hex string) (r, g, b uint8, ok bool) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(cleaned) == 3 {
		cleaned = string([]byte{
			cleaned[0], cleaned[0],
			cleaned[1], cleaned[1],
			cleaned[2], cleaned[2],
		})
	}
	if len(cleaned) != 6 {
		return 0, 0, 0, false
	}

	parsed, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(parsed >> 16), uint8(parsed >> 8), uint8(parsed), true
}
