package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/asciichar/internal/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		want    *Config
		wantErr string
	}{
		{
			name: "valid and normalized",
			in:   Config{LogLevel: "DEBUG", LogFormat: "Json", Charset: "ASCII"},
			want: &Config{LogLevel: "debug", LogFormat: "json", Charset: "ascii"},
		},
		{
			name:    "bad level",
			in:      Config{LogLevel: "loud", LogFormat: "text", Charset: "unicode"},
			wantErr: "invalid log-level",
		},
		{
			name:    "bad format",
			in:      Config{LogLevel: "info", LogFormat: "yaml", Charset: "unicode"},
			wantErr: "invalid log-format",
		},
		{
			name:    "bad charset",
			in:      Config{LogLevel: "info", LogFormat: "text", Charset: "ebcdic"},
			wantErr: "unknown charset",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConfig(tc.in)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "json", Charset: "unicode"})
	require.NoError(t, err)
	a, err := NewApp(out, logs, cfg)
	require.NoError(t, err)

	// --- Act ---
	err = a.Run(context.Background(), strings.NewReader("65 abc 67 68\n"))

	// --- Assert ---
	require.NoError(t, err)
	want := converter.Prompt + "65-A\nabc is not a valid ASCII number.\n67-C\n68-D\n"
	require.Equal(t, want, out.String())
	// Logs stay off the console output.
	assert.Contains(t, logs.String(), `"msg":"Token resolved."`)
	assert.Contains(t, logs.String(), `"name":"LATIN CAPITAL LETTER A"`)
	assert.NotContains(t, out.String(), "msg")
}

func TestApp_Run_InfoLevelIsQuiet(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	a, err := NewApp(&bytes.Buffer{}, logs, &Config{LogLevel: "info", LogFormat: "text", Charset: "ascii"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), strings.NewReader("1 2 3\n")))
	assert.Empty(t, logs.String())
}

func TestNewApp_BadCharset(t *testing.T) {
	t.Parallel()

	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{LogLevel: "info", LogFormat: "text", Charset: "nope"})
	require.Error(t, err)
}
