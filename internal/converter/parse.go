package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tokenize splits a line on Unicode whitespace. A blank line yields no tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseCodePoint parses a base-10 integer. A leading '+' or '-' is allowed,
// as are single underscores between digits ("1_000").
func ParseCodePoint(token string) (int64, error) {
	digits := token
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if !validDigits(digits) {
		return 0, fmt.Errorf("%q: %w", token, ErrNotNumber)
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(token, "_", ""), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q overflows int64: %w", token, ErrOutOfRange)
		}
		return 0, fmt.Errorf("%q: %w", token, ErrNotNumber)
	}
	return n, nil
}

// validDigits reports whether s is one or more ASCII digits, optionally
// separated by single underscores.
func validDigits(s string) bool {
	if s == "" {
		return false
	}
	prevDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			prevDigit = true
		case r == '_' && prevDigit:
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}
