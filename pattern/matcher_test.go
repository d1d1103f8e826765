package pattern

import "testing"

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		line    string
		want    bool
	}{
		// literals behave like substring search
		{"literal anywhere", "a", "apple", true},
		{"literal missing", "d", "apple", false},
		{"literal sequence", "ppl", "apple", true},
		{"literal longer than line", "apples", "apple", false},

		// anchors
		{"start anchor hit", "^log", "log: message", true},
		{"start anchor miss", "^log", "my log", false},
		{"start anchor single char", "^a", "abc", true},
		{"start anchor never past zero", "^b", "abc", false},
		{"end anchor hit", "end$", "the end", true},
		{"end anchor miss", "end$", "end of", false},

		// quantifiers
		{"one or more run", "a+", "aaa", true},
		{"one or more needs one", "a+", "bbb", false},
		{"one or more backtracks", "a+ab", "aab", true},
		{"optional absent", "ca?t", "ct", true},
		{"optional present", "ca?t", "cat", true},
		{"optional rejects two", "ca?t", "caat", false},
		{"optional spelling present", "colou?r", "colour", true},
		{"optional spelling absent", "colou?r", "color", true},
		{"optional spelling double", "colou?r", "colouur", false},
		{"quantified end anchor", "a+$", "baaa", true},
		{"quantified end anchor miss", "a+$", "aaab", false},

		// character classes
		{"digit hit", `\d`, "abc5", true},
		{"digit miss", `\d`, "abcde", false},
		{"word letter", `\w`, "---a---", true},
		{"word digit", `\w`, "---7---", true},
		{"word rejects underscore", `\w`, "___", false},
		{"word miss", `\w`, "-+-?.", false},
		{"escaped backslash", `\\`, `a\b`, true},

		// character groups
		{"group hit", "[abc]", "zzbzz", true},
		{"group miss", "[abc]", "zzz", false},
		{"negated group all members", "[^xyz]", "xyz", false},
		{"negated group one outsider", "[^xyz]", "xyza", true},
		{"negated group empty line", "[^xyz]", "", false},

		// wildcard
		{"wildcard between literals", "a.c", "abc", true},
		{"wildcard needs a char", "a.c", "ac", false},
		{"quantified wildcard", "a.+c", "axyzc", true},

		// empty pattern always matches
		{"empty pattern", "", "anything", true},
		{"empty pattern empty line", "", "", true},

		// combinations
		{"classes in sequence", `\d\w`, "1a", true},
		{"classes in sequence miss", `\d\w`, "a1_", false},
		{"group then anchor", "[abc]$", "cab", true},
		{"anchored quantifier", "^a+", "aaabb", true},
		{"anchored quantifier miss", "^a+", "baa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := p.Matches(tt.line); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.want)
			}
		})
	}
}

func TestPatternFind(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		line      string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"leftmost literal", "a", "banana", 1, 2, true},
		{"greedy run consumes all", "a+", "aaa", 0, 3, true},
		{"span in the middle", "[abc]", "zzbzz", 2, 3, true},
		{"anchored span", "^log", "log: message", 0, 3, true},
		{"end anchored span", "end$", "the end", 4, 7, true},
		{"empty pattern empty span", "", "abc", 0, 0, true},
		{"no match", "q", "banana", 0, 0, false},
		{"negated group span", "[^ban]", "banana!", 6, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			start, end, ok := p.Find(tt.line)
			if ok != tt.wantOK || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Find(%q, %q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.pattern, tt.line, start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

func TestLiteralPatternsEquivalentToContains(t *testing.T) {
	// For anchor-free literal-only patterns, Matches must agree with
	// strings.Contains.
	lines := []string{"", "a", "abc", "xabcx", "aabbcc", "zzz"}
	patterns := []string{"", "a", "ab", "abc", "bc", "zz", "q"}

	for _, pat := range patterns {
		p, err := Compile(pat)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pat, err)
		}
		for _, line := range lines {
			want := contains(line, pat)
			if got := p.Matches(line); got != want {
				t.Errorf("Matches(%q, %q) = %v, want %v", pat, line, got, want)
			}
		}
	}
}

func contains(line, sub string) bool {
	for i := 0; i+len(sub) <= len(line); i++ {
		if line[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
