package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/asciichar/internal/ctxlog"
	"golang.org/x/text/unicode/runenames"
)

const (
	// ExpectedCount is the number of values a line must hold.
	ExpectedCount = 4

	// Prompt is written before the input line is read.
	Prompt = "Enter four ASCII values separated by spaces: "
	// ArityMessage is printed when the line does not hold ExpectedCount values.
	ArityMessage = "Please enter exactly four ASCII values."
)

// Result is the outcome of converting a single token.
type Result struct {
	Token string
	Char  rune
	Err   error
}

// String renders the output line for the result.
func (r Result) String() string {
	if r.Err != nil {
		return r.Token + " is not a valid ASCII number."
	}
	return r.Token + "-" + string(r.Char)
}

// Converter resolves tokens against a charset.
type Converter struct {
	charset Charset
}

// New creates a Converter for the given charset.
func New(charset Charset) *Converter {
	return &Converter{charset: charset}
}

// Charset returns the converter's charset.
func (c *Converter) Charset() Charset {
	return c.charset
}

// Resolve parses a token and maps it to its character. Every failure is a
// *TokenError wrapping ErrNotNumber or ErrOutOfRange.
func (c *Converter) Resolve(token string) (rune, error) {
	n, err := ParseCodePoint(token)
	if err != nil {
		return 0, &TokenError{Token: token, Err: err}
	}
	r, err := c.charset.Resolve(n)
	if err != nil {
		return 0, &TokenError{Token: token, Err: err}
	}
	return r, nil
}

// Convert tokenizes a line and resolves every token in order. It returns
// ErrArity, and no results, unless the line holds exactly ExpectedCount tokens.
func (c *Converter) Convert(ctx context.Context, line string) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	tokens := Tokenize(line)
	if len(tokens) != ExpectedCount {
		logger.Debug("Arity check failed.", "got", len(tokens), "want", ExpectedCount)
		return nil, fmt.Errorf("got %d values, want %d: %w", len(tokens), ExpectedCount, ErrArity)
	}

	results := make([]Result, 0, len(tokens))
	for i, tok := range tokens {
		r, err := c.Resolve(tok)
		if err != nil {
			logger.Debug("Token rejected.", "index", i, "token", tok, "error", err)
		} else {
			logger.Debug("Token resolved.", "index", i, "token", tok, "code_point", fmt.Sprintf("U+%04X", r), "name", runenames.Name(r))
		}
		results = append(results, Result{Token: tok, Char: r, Err: err})
	}
	return results, nil
}

// Run performs one console session: it writes the prompt to out, reads a
// single line from in and prints the arity message or one line per token.
// Invalid input is reported on out; only I/O failures are returned.
func (c *Converter) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	if _, err := io.WriteString(out, Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := readLine(in)
	if err != nil {
		return err
	}
	logger.Debug("Input line read.", "bytes", len(line))

	results, err := c.Convert(ctx, line)
	if errors.Is(err, ErrArity) {
		_, werr := fmt.Fprintln(out, ArityMessage)
		return werr
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, res := range results {
		fmt.Fprintln(w, res.String())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	logger.Debug("Session finished.", "lines", len(results))
	return nil
}

// readLine reads up to the first newline. Input ending without a newline is
// still a full line; empty input is a blank line.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}
