package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gnolang/tgrep/internal/types"
	"github.com/gnolang/tgrep/pattern"
)

// Engine manages the matching process: it holds one compiled pattern and
// scans sources line by line against it.
type Engine struct {
	pattern      *pattern.Pattern
	ignoredPaths map[string]bool
	maxMatches   int // 0 means unlimited

	watcher    *fsnotify.Watcher
	isWatching bool
	watchPaths []string
}

// NewEngine compiles patternText and returns an engine ready to scan.
// Compilation failures surface the pattern.ParseError unchanged so callers
// can report which condition occurred.
func NewEngine(patternText string) (*Engine, error) {
	p, err := pattern.Compile(patternText)
	if err != nil {
		return nil, err
	}
	return &Engine{
		pattern:      p,
		ignoredPaths: make(map[string]bool),
	}, nil
}

// Pattern returns the engine's compiled pattern.
func (e *Engine) Pattern() *pattern.Pattern { return e.pattern }

// IgnorePath excludes a path from Run. Ignored paths still count as
// processed, they just produce no matches.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths[path] = true
}

// SetMaxMatches caps the number of matches collected per source. Zero
// removes the cap.
func (e *Engine) SetMaxMatches(n int) {
	e.maxMatches = n
}

// Run scans the file at filePath and returns every line match.
func (e *Engine) Run(filePath string) ([]types.Match, error) {
	if e.ignoredPaths[filePath] {
		return nil, nil
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filePath, err)
	}
	defer f.Close()

	return e.scan(bufio.NewScanner(f), filePath)
}

// RunSource scans an in-memory buffer and returns every line match. The
// reported matches carry no filename.
func (e *Engine) RunSource(source []byte) ([]types.Match, error) {
	return e.scan(bufio.NewScanner(bytes.NewReader(source)), "")
}

// MatchLine evaluates the pattern against exactly one line of text. This
// is the single-line contract of the stdin mode: one boolean, no error.
func (e *Engine) MatchLine(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	return e.pattern.Matches(line)
}

func (e *Engine) scan(scanner *bufio.Scanner, filename string) ([]types.Match, error) {
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var matches []types.Match
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		start, end, ok := e.pattern.Find(line)
		if !ok {
			continue
		}
		matches = append(matches, types.Match{
			Pattern:  e.pattern.Source(),
			Filename: filename,
			Line:     lineNum,
			Column:   start + 1,
			Text:     line,
			Start:    start,
			End:      end,
		})
		if e.maxMatches > 0 && len(matches) >= e.maxMatches {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", filename, err)
	}
	return matches, nil
}
