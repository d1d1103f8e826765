package pattern

import "fmt"

// ErrorKind distinguishes the parse failure conditions. Matching itself
// cannot error; these four kinds are the only unrecoverable errors in
// this package.
type ErrorKind int

const (
	// ErrUnterminatedEscape reports a pattern ending immediately after '\'.
	ErrUnterminatedEscape ErrorKind = iota
	// ErrUnsupportedEscape reports an escape letter other than 'd', 'w'
	// or a second backslash.
	ErrUnsupportedEscape
	// ErrUnterminatedGroup reports a '[' with no matching ']' before the
	// end of the pattern.
	ErrUnterminatedGroup
	// ErrDanglingQuantifier reports a '$', '+', '?' or prefix '^' with no
	// fragment to bind to.
	ErrDanglingQuantifier
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedEscape:
		return "unterminated escape"
	case ErrUnsupportedEscape:
		return "unsupported escape"
	case ErrUnterminatedGroup:
		return "unterminated group"
	case ErrDanglingQuantifier:
		return "dangling quantifier"
	default:
		return "unknown"
	}
}

// ParseError is returned by Compile when the pattern text is malformed.
// Callers can dispatch on Kind with errors.As to report which condition
// occurred.
type ParseError struct {
	Kind ErrorKind
	Pos  int  // byte offset of the offending token in the pattern
	Ch   byte // the offending character, when meaningful
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnterminatedEscape:
		return fmt.Sprintf("pattern ends after '\\' at position %d", e.Pos)
	case ErrUnsupportedEscape:
		return fmt.Sprintf("unsupported escape '\\%c' at position %d", e.Ch, e.Pos)
	case ErrUnterminatedGroup:
		return fmt.Sprintf("unterminated group starting at position %d", e.Pos)
	case ErrDanglingQuantifier:
		return fmt.Sprintf("'%c' at position %d has no fragment to bind to", e.Ch, e.Pos)
	default:
		return fmt.Sprintf("invalid pattern at position %d", e.Pos)
	}
}
