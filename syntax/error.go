package syntax

import (
	"errors"
	"fmt"
)

// Common parse errors. Every error returned by Parse wraps one of these
// sentinels in a *ParseError, so callers can classify failures with
// errors.Is.
var (
	// ErrUnescapedChar indicates a structural character in an invalid
	// position, such as a bare '-' outside a charset range.
	ErrUnescapedChar = errors.New("unescaped special character")

	// ErrUnrecognizedEscape indicates a backslash followed by a character
	// outside the escapable set ( ) [ ] { } -.
	ErrUnrecognizedEscape = errors.New("unrecognized escaped character")

	// ErrUnclosedCharset indicates a '[' with no matching ']'.
	ErrUnclosedCharset = errors.New("unclosed character set")

	// ErrUnterminatedGroup indicates a '(' with no matching ')'.
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrUnmatchedParen indicates a ')' with no open group.
	ErrUnmatchedParen = errors.New("unmatched closing parenthesis")

	// ErrUnassociatedQuantifier indicates a quantifier with no preceding
	// token to attach to, including a quantifier following a quantifier.
	ErrUnassociatedQuantifier = errors.New("quantifier with no preceding token")

	// ErrUnexpectedChar indicates malformed '{m,n}' quantifier syntax:
	// a non-digit, a missing comma, a missing closing brace, or m > n.
	ErrUnexpectedChar = errors.New("unexpected character in bounded quantifier")

	// ErrNestingTooDeep indicates the pattern exceeds the configured group
	// nesting limit.
	ErrNestingTooDeep = errors.New("pattern nesting too deep")
)

// ParseError describes a pattern compilation failure. Compilation aborts on
// the first error; there is no partial-pattern recovery.
type ParseError struct {
	// Pattern is the full pattern being compiled.
	Pattern string

	// Pos is the rune offset in Pattern where the error was detected.
	Pos int

	// Err is the sentinel error classifying the failure.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("textwalker: parsing %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
