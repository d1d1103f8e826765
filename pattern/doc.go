/*
Package pattern implements a small regular-expression engine: it compiles a
restricted pattern grammar into a tree of fragments and evaluates that tree
against a single line of text.

# Grammar

The accepted grammar is deliberately small:

	pattern      := token*
	token        := literal | escape | group | anchorStart | anchorEnd
	                | quantPlus | quantOpt | wildcard
	literal      := any character not in {\, [, ^, $, +, ?, .}
	escape       := '\' ('d' | 'w' | '\')
	group        := '[' ['^'] member* ']'
	member       := any character except ']'
	anchorStart  := '^' token            // binds to exactly one following token
	anchorEnd    := token '$'            // binds to the immediately preceding token
	quantPlus    := token '+'
	quantOpt     := token '?'
	wildcard     := '.'

There is no alternation, no backreferences, no bounded repetition counts and
no Unicode-aware classes. \d matches an ASCII digit; \w matches an ASCII
letter or digit (not underscore). Character groups hold single-character
literal members only.

Note that '^' anchors only the single token that follows it, not the whole
remainder of the pattern. This narrow binding is a documented characteristic
of the grammar.

# Fragment Tree

Compile produces an ordered sequence of Fragment nodes. Postfix operators
('$', '+', '?') wrap the fragment immediately preceding them:

  - LiteralFragment: an exact character sequence
  - ClassFragment: a predefined single-character category (digit, word)
  - GroupFragment: a set of literal alternatives, optionally negated
  - StartAnchorFragment, EndAnchorFragment: wrappers constraining a match
    to the start or end of the line
  - OneOrMoreFragment, ZeroOrOneFragment: quantifier wrappers
  - AnyCharFragment: the '.' wildcard

Fragment trees are immutable once constructed; evaluation never mutates them.

# Matching

A compiled Pattern matches anywhere in the line unless anchored:

	p, err := pattern.Compile(`colou?r`)
	if err != nil {
		// one of the ParseError kinds
	}
	ok := p.Matches("my color is red") // true

Quantifiers are greedy with backtracking: OneOrMore first consumes the
maximal run, then gives characters back if the remainder of the sequence
cannot otherwise match. Matching never returns an error; the only
unrecoverable errors in this package are the parse-time ones (see ParseError).
*/
package pattern
