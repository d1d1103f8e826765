package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tgrep/search"
)

var watchCmd = &cobra.Command{
	Use:   "watch <pattern> [paths...]",
	Short: "Re-run the search whenever a watched file changes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		patternText := args[0]
		paths := args[1:]
		if len(paths) == 0 {
			paths = []string{"."}
		}

		engine, err := search.New(patternText, cfgFile)
		if err != nil {
			exitCode = reportPatternError(err)
			return
		}

		if err := engine.StartWatching(paths); err != nil {
			logger.Error("Failed to start watching", zap.Error(err))
			exitCode = ExitUsage
			return
		}
		logger.Info("Watching for changes", zap.Strings("paths", paths), zap.String("pattern", patternText))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		if err := engine.StopWatching(); err != nil {
			logger.Error("Failed to stop watching", zap.Error(err))
		}
	},
}
