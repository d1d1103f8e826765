package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tgrep/pattern"
	"github.com/gnolang/tgrep/search"
)

func TestReportPatternError(t *testing.T) {
	t.Run("parse errors exit with the pattern code", func(t *testing.T) {
		_, err := pattern.Compile("[abc")
		require.Error(t, err)
		assert.Equal(t, ExitBadPattern, reportPatternError(err))
	})

	t.Run("other errors exit with the usage code", func(t *testing.T) {
		assert.Equal(t, ExitUsage, reportPatternError(os.ErrNotExist))
	})
}

func TestInitConfigurationFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".tgrep.yaml")
	require.NoError(t, initConfigurationFile(cfgPath))

	engine, err := search.New("digits", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, `\d+`, engine.Pattern().Source())
}
