// File: prefix-parse/error.go
package prefixparse

import "errors"

// ErrNoPrefixMatch is reported by ParseWith when the input does not begin
// with the requested format's prefix. Test for it with errors.Is.
var ErrNoPrefixMatch = errors.New("no prefix match")

// Kind discriminates the two failure classes a parse can produce.
type Kind int

const (
	// NoPrefixMatch means the input lacked the format's exact prefix.
	// Only ParseWith produces this kind; Parse always falls back to decimal.
	NoPrefixMatch Kind = iota + 1

	// RadixParseFailed means the remainder after prefix stripping was not a
	// valid digit sequence in the target radix. The underlying error from
	// the digit parser is preserved in Err.
	RadixParseFailed
)

// ParseError is the error type returned by Parse and ParseWith.
type ParseError struct {
	Kind Kind
	Err  error // underlying digit-parse error; nil for NoPrefixMatch
}

// Error returns "no prefix match" for a prefix mismatch, and otherwise
// passes the underlying digit-parse error's message through untouched so
// callers keep full diagnostic detail (invalid character, overflow, ...).
func (e *ParseError) Error() string {
	if e.Kind == NoPrefixMatch {
		return ErrNoPrefixMatch.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes ErrNoPrefixMatch or the wrapped digit-parse error, so
// errors.Is works against ErrNoPrefixMatch, strconv.ErrSyntax, and
// strconv.ErrRange.
func (e *ParseError) Unwrap() error {
	if e.Kind == NoPrefixMatch {
		return ErrNoPrefixMatch
	}
	return e.Err
}
