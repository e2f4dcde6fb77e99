// Package dateutil turns user-friendly date formats (YYYY-MM-DD and friends)
// into formatted datestamps.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates a datestamp format that cannot be translated.
var ErrInvalidFormat = errors.New("invalid date format")

// DefaultFormat is the datestamp pandoc receives for --datestamp-today.
const DefaultFormat = "YYYY-MM-DD"

const maxFormatLength = 50

// tokens is ordered longest first so YYYY wins over YY and MMMM over MM.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts accepted in place of a format (case-insensitive).
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a token format into a Go time layout. Text inside square
// brackets is copied literally; any other non-token byte is kept as is.
func Layout(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidFormat)
	}
	if len(format) > maxFormatLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidFormat, maxFormatLength)
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		i += writeToken(&b, format[i:])
	}
	return b.String(), nil
}

// writeToken writes the layout for the token at the start of s, or the first
// byte of s when no token matches, and returns how many bytes it consumed.
func writeToken(b *strings.Builder, s string) int {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	b.WriteByte(s[0])
	return 1
}

// Stamp formats t with a token format or preset.
func Stamp(format string, t time.Time) (string, error) {
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
