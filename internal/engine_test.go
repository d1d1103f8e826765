package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tgrep/pattern"
)

func TestNewEngine(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		engine, err := NewEngine(`\d+`)
		require.NoError(t, err)
		assert.Equal(t, `\d+`, engine.Pattern().Source())
	})

	t.Run("malformed pattern surfaces the parse error", func(t *testing.T) {
		_, err := NewEngine("[abc")
		require.Error(t, err)
		var perr *pattern.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, pattern.ErrUnterminatedGroup, perr.Kind)
	})
}

func TestEngineRunSource(t *testing.T) {
	engine, err := NewEngine(`\d\d`)
	require.NoError(t, err)

	source := []byte("no digits here\nport 8080 open\njust one: 7\nfallback 22\n")
	matches, err := engine.RunSource(source)
	require.NoError(t, err)

	require.Len(t, matches, 2)

	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 6, matches[0].Column)
	assert.Equal(t, "80", matches[0].Span())
	assert.Equal(t, "port 8080 open", matches[0].Text)

	assert.Equal(t, 4, matches[1].Line)
	assert.Equal(t, "22", matches[1].Span())
}

func TestEngineRunFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "app.log")
	content := "ok\nerror: disk full\nok\nerror: timeout\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	engine, err := NewEngine("^error")
	require.NoError(t, err)

	matches, err := engine.Run(path)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, path, matches[0].Filename)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 4, matches[1].Line)
}

func TestEngineIgnorePath(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "skipped.txt")
	require.NoError(t, os.WriteFile(path, []byte("match me\n"), 0o644))

	engine, err := NewEngine("match")
	require.NoError(t, err)
	engine.IgnorePath(path)

	matches, err := engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEngineMaxMatches(t *testing.T) {
	engine, err := NewEngine("a")
	require.NoError(t, err)
	engine.SetMaxMatches(2)

	matches, err := engine.RunSource([]byte("a\na\na\na\n"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestEngineMatchLine(t *testing.T) {
	engine, err := NewEngine("end$")
	require.NoError(t, err)

	// the trailing newline from a stdin read must not defeat the end anchor
	assert.True(t, engine.MatchLine("the end\n"))
	assert.True(t, engine.MatchLine("the end\r\n"))
	assert.False(t, engine.MatchLine("end of\n"))
}
