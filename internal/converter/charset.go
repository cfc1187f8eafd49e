package converter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Charset is the code point domain accepted when resolving a value.
type Charset int

const (
	// Unicode accepts every Unicode scalar value: 0..0x10FFFF minus surrogates.
	Unicode Charset = iota
	// Latin1 accepts 0..255.
	Latin1
	// ASCII accepts 0..127.
	ASCII
)

var charsetNames = map[Charset]string{
	Unicode: "unicode",
	Latin1:  "latin1",
	ASCII:   "ascii",
}

// ParseCharset maps a charset name, case-insensitively, to its Charset.
func ParseCharset(s string) (Charset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for cs, n := range charsetNames {
		if n == name {
			return cs, nil
		}
	}
	return Unicode, fmt.Errorf("unknown charset %q: must be 'unicode', 'latin1' or 'ascii'", s)
}

// String returns the charset name.
func (c Charset) String() string {
	if n, ok := charsetNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Charset(%d)", int(c))
}

// Max returns the largest code point the charset accepts.
func (c Charset) Max() int64 {
	switch c {
	case ASCII:
		return 0x7F
	case Latin1:
		return 0xFF
	default:
		return utf8.MaxRune
	}
}

// Resolve maps a code point to its character.
func (c Charset) Resolve(n int64) (rune, error) {
	if n < 0 || n > c.Max() {
		return utf8.RuneError, fmt.Errorf("%d is outside %s: %w", n, c, ErrOutOfRange)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return utf8.RuneError, fmt.Errorf("%#x is a surrogate: %w", n, ErrOutOfRange)
	}
	return r, nil
}
