package pattern

// parser scans the pattern text left to right and builds the fragment
// sequence. It holds no state beyond the scan cursor and the builder.
type parser struct {
	input    string // the entire pattern to compile
	position int    // current reading position in input
	builder  fragmentBuilder
}

// fragmentBuilder accumulates completed fragments in order and supports
// replacing the most recent one. Postfix operators ('$', '+', '?') are
// applied by wrapping the last completed fragment rather than by an
// implicit stack discipline.
type fragmentBuilder struct {
	fragments []Fragment
}

func (b *fragmentBuilder) push(f Fragment) {
	b.fragments = append(b.fragments, f)
}

// wrapLast replaces the most recent fragment with wrap(last). It reports
// false when no fragment has been completed yet (a dangling operator).
func (b *fragmentBuilder) wrapLast(wrap func(Fragment) Fragment) bool {
	if len(b.fragments) == 0 {
		return false
	}
	last := len(b.fragments) - 1
	b.fragments[last] = wrap(b.fragments[last])
	return true
}

// Compile parses the pattern text into a Pattern ready for matching.
// The scan is a single left-to-right pass with one character of lookahead
// and no backtracking. Malformed patterns yield a *ParseError.
func Compile(text string) (*Pattern, error) {
	p := &parser{input: text}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Pattern{source: text, fragments: p.builder.fragments}, nil
}

func (p *parser) run() error {
	for p.position < len(p.input) {
		opPos := p.position
		switch c := p.input[p.position]; c {
		case '^':
			p.position++
			// '^' binds to exactly the one token that follows it, not to
			// the remainder of the pattern.
			inner, err := p.parseToken()
			if err != nil {
				return err
			}
			if inner == nil {
				return &ParseError{Kind: ErrDanglingQuantifier, Pos: opPos, Ch: '^'}
			}
			p.builder.push(&StartAnchorFragment{Inner: inner})

		case '$':
			p.position++
			if !p.builder.wrapLast(func(f Fragment) Fragment {
				return &EndAnchorFragment{Inner: f}
			}) {
				return &ParseError{Kind: ErrDanglingQuantifier, Pos: opPos, Ch: '$'}
			}

		case '+':
			p.position++
			if !p.builder.wrapLast(func(f Fragment) Fragment {
				return &OneOrMoreFragment{Inner: f}
			}) {
				return &ParseError{Kind: ErrDanglingQuantifier, Pos: opPos, Ch: '+'}
			}

		case '?':
			p.position++
			if !p.builder.wrapLast(func(f Fragment) Fragment {
				return &ZeroOrOneFragment{Inner: f}
			}) {
				return &ParseError{Kind: ErrDanglingQuantifier, Pos: opPos, Ch: '?'}
			}

		default:
			f, err := p.parseToken()
			if err != nil {
				return err
			}
			if f != nil {
				p.builder.push(f)
			}
		}
	}
	return nil
}

// parseToken consumes one atomic token (escape, group, wildcard or plain
// literal) and returns its fragment. It returns (nil, nil) at end of input.
func (p *parser) parseToken() (Fragment, error) {
	if p.position >= len(p.input) {
		return nil, nil
	}
	switch c := p.input[p.position]; c {
	case '\\':
		return p.parseEscape()
	case '[':
		return p.parseGroup()
	case '.':
		p.position++
		return &AnyCharFragment{}, nil
	default:
		p.position++
		return &LiteralFragment{Text: string(c)}, nil
	}
}

// parseEscape handles '\d', '\w' and '\\'. The cursor sits on the
// backslash when called.
func (p *parser) parseEscape() (Fragment, error) {
	escPos := p.position
	p.position++
	if p.position >= len(p.input) {
		return nil, &ParseError{Kind: ErrUnterminatedEscape, Pos: escPos, Ch: '\\'}
	}
	c := p.input[p.position]
	p.position++
	switch c {
	case 'd':
		return &ClassFragment{Class: ClassDigit}, nil
	case 'w':
		return &ClassFragment{Class: ClassWord}, nil
	case '\\':
		return &LiteralFragment{Text: `\`}, nil
	default:
		return nil, &ParseError{Kind: ErrUnsupportedEscape, Pos: escPos, Ch: c}
	}
}

// parseGroup handles '[...]'. The cursor sits on the opening bracket when
// called. A '^' immediately after '[' negates the group; every other
// character before ']' becomes a single-character literal member.
func (p *parser) parseGroup() (Fragment, error) {
	openPos := p.position
	p.position++

	negated := false
	if p.position < len(p.input) && p.input[p.position] == '^' {
		negated = true
		p.position++
	}

	var members []Fragment
	for p.position < len(p.input) {
		c := p.input[p.position]
		p.position++
		if c == ']' {
			return &GroupFragment{Members: members, Negated: negated}, nil
		}
		members = append(members, &LiteralFragment{Text: string(c)})
	}
	return nil, &ParseError{Kind: ErrUnterminatedGroup, Pos: openPos, Ch: '['}
}
