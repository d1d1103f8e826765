package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/tgrep/pattern"
	"github.com/gnolang/tgrep/search"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern>",
	Short: "Match exactly one line read from standard input",
	Long: `Reads a single line from standard input and matches it against the pattern.
Exits 0 on a match, 1 on no match, 3 on a malformed pattern.

Example) echo "apple" | tgrep match "a"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runMatch(args[0])
	},
}

func runMatch(patternText string) int {
	engine, err := search.New(patternText, cfgFile)
	if err != nil {
		return reportPatternError(err)
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(os.Stderr, "error: could not read a line from stdin")
		return ExitUsage
	}

	if engine.MatchLine(line) {
		return ExitMatch
	}
	return ExitNoMatch
}

// reportPatternError prints the parse failure, naming the condition when
// the error is one of the pattern error kinds.
func reportPatternError(err error) int {
	var perr *pattern.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "invalid pattern (%s): %v\n", perr.Kind, perr)
		return ExitBadPattern
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return ExitUsage
}
