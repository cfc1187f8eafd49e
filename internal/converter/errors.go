package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when the input line does not hold ExpectedCount tokens.
	ErrArity = errors.New("wrong number of values")
	// ErrNotNumber is returned when a token is not a base-10 integer.
	ErrNotNumber = errors.New("not an integer")
	// ErrOutOfRange is returned when an integer has no character in the active charset.
	ErrOutOfRange = errors.New("code point out of range")
)

// TokenError records the token that failed to convert and why.
type TokenError struct {
	Token string
	Err   error
}

// Error implements the error interface for TokenError.
func (e *TokenError) Error() string {
	return fmt.Sprintf("token %q: %v", e.Token, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TokenError) Unwrap() error {
	return e.Err
}
