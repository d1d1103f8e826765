package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnolang/tgrep/internal/types"
)

var (
	matchStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	summaryStyle = color.New(color.FgYellow, color.Bold)
)

// FormatMatches renders matches one per line in the classic grep shape,
// file:line:column followed by the line text with the matched span
// highlighted.
func FormatMatches(matches []tt.Match) string {
	var builder strings.Builder
	for _, m := range matches {
		if m.Filename != "" {
			builder.WriteString(fileStyle.Sprint(m.Filename))
			builder.WriteString(":")
		}
		builder.WriteString(lineStyle.Sprintf("%d:%d", m.Line, m.Column))
		builder.WriteString(": ")
		builder.WriteString(highlightSpan(m))
		builder.WriteString("\n")
	}
	return builder.String()
}

// GenerateFormattedMatch renders matches as annotated blocks with the
// matched span underlined, one block per match.
func GenerateFormattedMatch(matches []tt.Match) string {
	var builder strings.Builder
	for _, m := range matches {
		builder.WriteString(buildMatch(m))
	}
	if len(matches) > 0 {
		builder.WriteString(summaryStyle.Sprintf("%d match(es) for pattern %q\n", len(matches), matches[0].Pattern))
	}
	return builder.String()
}

func buildMatch(m tt.Match) string {
	maxLineNumWidth := calculateMaxLineNumWidth(m.Line)
	padding := strings.Repeat(" ", maxLineNumWidth+1)

	var builder strings.Builder
	builder.WriteString(matchStyle.Sprintf("match: "))
	builder.WriteString(summaryStyle.Sprintf("%s\n", m.Pattern))
	builder.WriteString(lineStyle.Sprintf("%s--> ", strings.Repeat(" ", maxLineNumWidth)))
	builder.WriteString(fileStyle.Sprintf("%s:%d:%d\n", m.Filename, m.Line, m.Column))

	builder.WriteString(lineStyle.Sprintf("%s|\n", padding))
	lineNum := fmt.Sprintf("%*d", maxLineNumWidth, m.Line)
	builder.WriteString(lineStyle.Sprintf("%s | ", lineNum))
	builder.WriteString(highlightSpan(m))
	builder.WriteString("\n")

	builder.WriteString(lineStyle.Sprintf("%s| ", padding))
	builder.WriteString(strings.Repeat(" ", m.Start))
	builder.WriteString(matchStyle.Sprint(strings.Repeat("^", underlineWidth(m))))
	builder.WriteString("\n\n")
	return builder.String()
}

// highlightSpan returns the line text with the matched span colorized.
func highlightSpan(m tt.Match) string {
	if m.Start < 0 || m.End > len(m.Text) || m.Start > m.End {
		return m.Text
	}
	return m.Text[:m.Start] + matchStyle.Sprint(m.Text[m.Start:m.End]) + m.Text[m.End:]
}

// underlineWidth keeps at least one caret visible for empty spans, which
// an empty pattern produces.
func underlineWidth(m tt.Match) int {
	if w := m.End - m.Start; w > 0 {
		return w
	}
	return 1
}

func calculateMaxLineNumWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}
