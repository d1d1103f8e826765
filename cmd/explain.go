package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/tgrep/pattern"
)

var explainCmd = &cobra.Command{
	Use:   "explain <pattern>",
	Short: "Print the compiled fragment tree of a pattern",
	Long: `Compiles the pattern and prints its top-level fragment sequence, one
fragment per line. Useful for checking how operators bound to their operands.

Example) tgrep explain '^c[ab]\d?x+$'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := pattern.Compile(args[0])
		if err != nil {
			exitCode = reportPatternError(err)
			return
		}

		fragments := p.Fragments()
		fmt.Printf("pattern %q compiles to %d fragment(s):\n", p.Source(), len(fragments))
		for i, f := range fragments {
			fmt.Printf("  %d: %s\n", i, f)
		}
	},
}
