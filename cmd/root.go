package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes. The match result, malformed patterns and usage problems use
// non-overlapping codes so callers can tell the three failure classes apart.
const (
	ExitMatch      = 0
	ExitNoMatch    = 1
	ExitUsage      = 2
	ExitBadPattern = 3
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger

	stdinPattern string
)

var rootCmd = &cobra.Command{
	Use:              "tgrep",
	Short:            "tgrep - a minimal regular-expression line matcher",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	Run: func(cmd *cobra.Command, args []string) {
		// Format: tgrep -E <pattern> => behaves like the match subcommand.
		// An empty pattern is valid (it matches every line), so check the
		// flag presence rather than its value.
		if cmd.Flags().Changed("extended-regexp") {
			exitCode = runMatch(stdinPattern)
			return
		}
		// display help when only 'tgrep' is entered
		_ = cmd.Help()
		exitCode = ExitUsage
	},
}

// exitCode is what Execute hands back to main once the command tree has run.
var exitCode int

func Execute() int {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return ExitUsage
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		return ExitUsage
	}
	return exitCode
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".tgrep.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for searches")
	rootCmd.Flags().StringVarP(&stdinPattern, "extended-regexp", "E", "", "Match one line of stdin against the pattern")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(watchCmd)
}
