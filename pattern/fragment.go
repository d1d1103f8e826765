package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// FragmentKind identifies the variant of a Fragment.
type FragmentKind int

const (
	FragLiteral FragmentKind = iota
	FragClass
	FragGroup
	FragStartAnchor
	FragEndAnchor
	FragOneOrMore
	FragZeroOrOne
	FragAnyChar
)

// Fragment is one node of a compiled pattern tree; the atomic unit the
// matcher evaluates. Fragments are immutable once constructed.
type Fragment interface {
	Kind() FragmentKind
	String() string // debugging or printing purpose

	// matchAt evaluates the fragment against line at byte offset at.
	// It reports the number of bytes consumed, or false when the fragment
	// does not match there. Evaluation never errors and never mutates
	// the fragment.
	matchAt(line string, at int) (int, bool)
}

var (
	_ Fragment = (*LiteralFragment)(nil)
	_ Fragment = (*ClassFragment)(nil)
	_ Fragment = (*GroupFragment)(nil)
	_ Fragment = (*StartAnchorFragment)(nil)
	_ Fragment = (*EndAnchorFragment)(nil)
	_ Fragment = (*OneOrMoreFragment)(nil)
	_ Fragment = (*ZeroOrOneFragment)(nil)
	_ Fragment = (*AnyCharFragment)(nil)
)

// LiteralFragment matches an exact character sequence. The parser only
// emits single-character literals, but evaluation supports any length.
type LiteralFragment struct {
	Text string
}

func (f *LiteralFragment) Kind() FragmentKind { return FragLiteral }

func (f *LiteralFragment) String() string {
	escaped := strconv.Quote(f.Text)
	return fmt.Sprintf("Literal(%s)", escaped[1:len(escaped)-1])
}

func (f *LiteralFragment) matchAt(line string, at int) (int, bool) {
	n := len(f.Text)
	if at+n > len(line) {
		return 0, false
	}
	if line[at:at+n] != f.Text {
		return 0, false
	}
	return n, true
}

// Class is a predefined single-character category.
type Class int

const (
	ClassDigit Class = iota // \d
	ClassWord               // \w
)

func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassWord:
		return "word"
	default:
		return "unknown"
	}
}

// ClassFragment matches a single character belonging to a Class.
type ClassFragment struct {
	Class Class
}

func (f *ClassFragment) Kind() FragmentKind { return FragClass }

func (f *ClassFragment) String() string {
	return fmt.Sprintf("Class(%s)", f.Class)
}

func (f *ClassFragment) matchAt(line string, at int) (int, bool) {
	if at >= len(line) {
		return 0, false
	}
	c := line[at]
	switch f.Class {
	case ClassDigit:
		return 1, isASCIIDigit(c)
	case ClassWord:
		// letters and digits only; underscore is intentionally excluded
		// from this grammar's notion of a word character.
		return 1, isASCIIDigit(c) || isASCIILetter(c)
	default:
		return 0, false
	}
}

// GroupFragment matches a user-specified set of alternatives. A positive
// group succeeds when any member matches at the cursor (first success in
// member order wins). A negative group succeeds when every member fails,
// and always consumes exactly one character.
type GroupFragment struct {
	Members []Fragment
	Negated bool
}

func (f *GroupFragment) Kind() FragmentKind { return FragGroup }

func (f *GroupFragment) String() string {
	parts := make([]string, 0, len(f.Members))
	for _, m := range f.Members {
		parts = append(parts, m.String())
	}
	name := "Group"
	if f.Negated {
		name = "NegatedGroup"
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}

func (f *GroupFragment) matchAt(line string, at int) (int, bool) {
	if f.Negated {
		if at >= len(line) {
			return 0, false
		}
		for _, m := range f.Members {
			if _, ok := m.matchAt(line, at); ok {
				return 0, false
			}
		}
		// a negative group never inspects more than the current position
		// for the purpose of reporting length
		return 1, true
	}
	for _, m := range f.Members {
		if n, ok := m.matchAt(line, at); ok {
			return n, true
		}
	}
	return 0, false
}

// StartAnchorFragment matches its inner fragment only at offset zero.
type StartAnchorFragment struct {
	Inner Fragment
}

func (f *StartAnchorFragment) Kind() FragmentKind { return FragStartAnchor }

func (f *StartAnchorFragment) String() string {
	return fmt.Sprintf("StartAnchor(%s)", f.Inner)
}

func (f *StartAnchorFragment) matchAt(line string, at int) (int, bool) {
	if at != 0 {
		return 0, false
	}
	return f.Inner.matchAt(line, at)
}

// EndAnchorFragment matches its inner fragment only when the match ends
// exactly at the end of the line.
type EndAnchorFragment struct {
	Inner Fragment
}

func (f *EndAnchorFragment) Kind() FragmentKind { return FragEndAnchor }

func (f *EndAnchorFragment) String() string {
	return fmt.Sprintf("EndAnchor(%s)", f.Inner)
}

func (f *EndAnchorFragment) matchAt(line string, at int) (int, bool) {
	n, ok := f.Inner.matchAt(line, at)
	if !ok || at+n != len(line) {
		return 0, false
	}
	return n, true
}

// OneOrMoreFragment matches one or more consecutive occurrences of its
// inner fragment. Standalone evaluation is greedy: it consumes the maximal
// run. The matcher handles giving characters back (see matcher.go).
type OneOrMoreFragment struct {
	Inner Fragment
}

func (f *OneOrMoreFragment) Kind() FragmentKind { return FragOneOrMore }

func (f *OneOrMoreFragment) String() string {
	return fmt.Sprintf("OneOrMore(%s)", f.Inner)
}

func (f *OneOrMoreFragment) matchAt(line string, at int) (int, bool) {
	total := 0
	for {
		n, ok := f.Inner.matchAt(line, at+total)
		if !ok {
			break
		}
		total += n
		if n == 0 {
			break // zero-width inner fragment, one occurrence is enough
		}
	}
	if total == 0 {
		// at least one occurrence is required; a zero-width first success
		// still counts
		if _, ok := f.Inner.matchAt(line, at); ok {
			return 0, true
		}
		return 0, false
	}
	return total, true
}

// ZeroOrOneFragment matches at most one occurrence of its inner fragment.
// It never fails: absence matches with length zero.
type ZeroOrOneFragment struct {
	Inner Fragment
}

func (f *ZeroOrOneFragment) Kind() FragmentKind { return FragZeroOrOne }

func (f *ZeroOrOneFragment) String() string {
	return fmt.Sprintf("ZeroOrOne(%s)", f.Inner)
}

func (f *ZeroOrOneFragment) matchAt(line string, at int) (int, bool) {
	if n, ok := f.Inner.matchAt(line, at); ok {
		return n, true
	}
	return 0, true
}

// AnyCharFragment matches any single character.
type AnyCharFragment struct{}

func (f *AnyCharFragment) Kind() FragmentKind { return FragAnyChar }

func (f *AnyCharFragment) String() string { return "AnyChar" }

func (f *AnyCharFragment) matchAt(line string, at int) (int, bool) {
	if at >= len(line) {
		return 0, false
	}
	return 1, true
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
