package types

import "fmt"

// Match represents a single pattern match found in a scanned line.
type Match struct {
	Pattern  string `json:"pattern"`
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`   // 1-based line number
	Column   int    `json:"column"` // 1-based byte column of the match start
	Text     string `json:"text"`   // the full matched line, without trailing newline
	Start    int    `json:"start"`  // byte offset of the matched span within Text
	End      int    `json:"end"`    // byte offset just past the matched span
}

// Span returns the matched portion of the line.
func (m Match) Span() string {
	if m.Start < 0 || m.End > len(m.Text) || m.Start > m.End {
		return ""
	}
	return m.Text[m.Start:m.End]
}

func (m Match) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", m.Filename, m.Line, m.Column, m.Span())
}
