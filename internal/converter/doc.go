// Package converter turns a console line of code point values into
// characters. It owns the tokenizer, the arity check, the integer parser and
// the code point resolution, and renders one output line per token.
package converter
