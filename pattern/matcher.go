package pattern

// Pattern is a compiled fragment sequence. It is immutable and safe for
// repeated Matches/Find calls.
type Pattern struct {
	source    string
	fragments []Fragment
}

// Source returns the pattern text the Pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// Fragments returns the top-level fragment sequence, in order.
func (p *Pattern) Fragments() []Fragment { return p.fragments }

// Matches reports whether the pattern matches anywhere in line.
func (p *Pattern) Matches(line string) bool {
	_, _, ok := p.Find(line)
	return ok
}

// Find locates the leftmost match of the pattern in line and returns the
// byte offsets [start, end) of the matched span. An empty pattern matches
// immediately with an empty span. Find never errors; no match is reported
// by ok == false.
func (p *Pattern) Find(line string) (start, end int, ok bool) {
	if len(p.fragments) == 0 {
		return 0, 0, true
	}

	// A leading start anchor pins the attempt to offset zero; failure
	// there terminates the whole match with no retries.
	if p.fragments[0].Kind() == FragStartAnchor {
		if end, ok := matchFrom(p.fragments, line, 0); ok {
			return 0, end, true
		}
		return 0, 0, false
	}

	for at := 0; at <= len(line); at++ {
		if end, ok := matchFrom(p.fragments, line, at); ok {
			return at, end, true
		}
	}
	return 0, 0, false
}

// matchFrom attempts to match the whole fragment sequence against line
// starting at byte offset at, returning the offset just past the match.
//
// Quantifiers backtrack: OneOrMore consumes greedily first and then gives
// occurrences back one at a time until the remainder of the sequence
// matches; ZeroOrOne prefers the one-occurrence reading. This is a
// deliberate upgrade over a greedy-only evaluation, which would reject
// lines like "aab" against "a+ab".
func matchFrom(fragments []Fragment, line string, at int) (int, bool) {
	if len(fragments) == 0 {
		return at, true
	}

	rest := fragments[1:]
	switch f := fragments[0].(type) {
	case *OneOrMoreFragment:
		// Collect the cursor position after each successive occurrence,
		// then retry the remainder from the longest run downward.
		var ends []int
		cursor := at
		for {
			n, ok := f.Inner.matchAt(line, cursor)
			if !ok {
				break
			}
			cursor += n
			ends = append(ends, cursor)
			if n == 0 {
				break // zero-width occurrence, repetition cannot advance
			}
		}
		for i := len(ends) - 1; i >= 0; i-- {
			if end, ok := matchFrom(rest, line, ends[i]); ok {
				return end, true
			}
		}
		return 0, false

	case *ZeroOrOneFragment:
		if n, ok := f.Inner.matchAt(line, at); ok && n > 0 {
			if end, ok := matchFrom(rest, line, at+n); ok {
				return end, true
			}
		}
		return matchFrom(rest, line, at)

	default:
		n, ok := f.matchAt(line, at)
		if !ok {
			return 0, false
		}
		return matchFrom(rest, line, at+n)
	}
}
