package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		line string
		want []string
	}{
		{"", []string{}},
		{"   \t ", []string{}},
		{"65", []string{"65"}},
		{" 65  66\t67\r\n", []string{"65", "66", "67"}},
		{"a b", []string{"a", "b"}},
	}

	for _, tc := range testCases {
		got := Tokenize(tc.line)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
	}
}

func TestParseCodePoint(t *testing.T) {
	t.Parallel()

	valid := map[string]int64{
		"0":         0,
		"65":        65,
		"+65":       65,
		"-1":        -1,
		"007":       7,
		"6_5":       65,
		"1_114_111": 1114111,
	}
	for token, want := range valid {
		got, err := ParseCodePoint(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}

	invalid := []string{"", "+", "-", "abc", "6.5", "0x41", "_65", "65_", "6__5", "+-6", "١٢", "6e2"}
	for _, token := range invalid {
		_, err := ParseCodePoint(token)
		assert.ErrorIs(t, err, ErrNotNumber, "token %q", token)
	}

	_, err := ParseCodePoint("9223372036854775808")
	assert.ErrorIs(t, err, ErrOutOfRange)
}
