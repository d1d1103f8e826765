package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/gnolang/tgrep/internal/types"
)

func TestFormatMatches(t *testing.T) {
	color.NoColor = true

	matches := []tt.Match{
		{
			Pattern:  "ap",
			Filename: "fruit.txt",
			Line:     3,
			Column:   1,
			Text:     "apple",
			Start:    0,
			End:      2,
		},
		{
			Pattern: "ap",
			Line:    1,
			Column:  9,
			Text:    "one ripe apricot",
			Start:   9,
			End:     11,
		},
	}

	out := FormatMatches(matches)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "fruit.txt:3:1: apple", lines[0])
	// a match without a filename omits the file prefix
	assert.Equal(t, "1:9: one ripe apricot", lines[1])
}

func TestGenerateFormattedMatch(t *testing.T) {
	color.NoColor = true

	matches := []tt.Match{
		{
			Pattern:  "end$",
			Filename: "story.txt",
			Line:     12,
			Column:   5,
			Text:     "the end",
			Start:    4,
			End:      7,
		},
	}

	out := GenerateFormattedMatch(matches)
	assert.Contains(t, out, "match: end$")
	assert.Contains(t, out, "--> story.txt:12:5")
	assert.Contains(t, out, "12 | the end")
	assert.Contains(t, out, "^^^")
	assert.Contains(t, out, `1 match(es) for pattern "end$"`)
}

func TestGenerateFormattedMatchEmptySpan(t *testing.T) {
	color.NoColor = true

	matches := []tt.Match{
		{
			Pattern:  "",
			Filename: "empty.txt",
			Line:     1,
			Column:   1,
			Text:     "anything",
		},
	}

	out := GenerateFormattedMatch(matches)
	// an empty pattern still gets one caret
	assert.Contains(t, out, "^")
}

func TestFormatMatchesEmpty(t *testing.T) {
	assert.Empty(t, FormatMatches(nil))
	assert.Empty(t, GenerateFormattedMatch(nil))
}
