// Package dateutil converts user-facing timestamp format strings into
// Go time layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates an invalid timestamp format string.
var ErrInvalidFormat = errors.New("invalid timestamp format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultTimestampFormat stamps generated output filenames. Minutes
// are lower-case mm; MM always means the month, even after HH.
const DefaultTimestampFormat = "YYYYMMDD-HHmmSS"

// formatTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var formatTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"SS", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common timestamp formats.
var Presets = map[string]string{
	"compact": "YYYYMMDD-HHmmSS",
	"date":    "YYYY-MM-DD",
	"iso":     "YYYY-MM-DD[T]HHmmSS",
}

// ParseFormat converts a user-friendly format string to Go's time
// layout. Tokens: YYYY, YY, MM, M, DD, D, HH, mm, SS. Use brackets to
// escape literal text: [run] preserves "run" literally. Any non-token
// characters outside brackets are preserved as literals. Returns
// ErrInvalidFormat if the format is empty, too long, or has an
// unclosed bracket.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}

	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var result strings.Builder
	result.Grow(len(format))

	i := 0
	for i < len(format) {
		// Bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range formatTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Timestamp renders t using a user-facing format string.
func Timestamp(format string, t time.Time) (string, error) {
	goFmt, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
