package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tgrep/formatter"
	tt "github.com/gnolang/tgrep/internal/types"
	"github.com/gnolang/tgrep/search"
)

var (
	ignorePaths      string
	searchExtensions string
	searchJSONOutput bool
	searchDecorated  bool
	outPath          string
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern> [paths...]",
	Short: "Search files or directories for lines matching the pattern",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		patternText := args[0]
		paths := args[1:]
		if len(paths) == 0 {
			paths = []string{"."}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := search.New(patternText, cfgFile)
		if err != nil {
			exitCode = reportPatternError(err)
			return
		}

		if ignorePaths != "" {
			for _, path := range strings.Split(ignorePaths, ",") {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		var extensions []string
		if searchExtensions != "" {
			for _, ext := range strings.Split(searchExtensions, ",") {
				extensions = append(extensions, strings.TrimSpace(ext))
			}
		}

		matches, err := search.ProcessFiles(ctx, logger, engine, paths, search.ProcessFile, extensions...)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			exitCode = ExitUsage
			return
		}

		printMatches(logger, matches)

		if len(matches) == 0 {
			exitCode = ExitNoMatch
		}
	},
}

func init() {
	searchCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	searchCmd.Flags().StringVar(&searchExtensions, "ext", "", "Comma-separated list of file extensions to search (default all)")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false, "Output matches in JSON format")
	searchCmd.Flags().BoolVar(&searchDecorated, "decorated", false, "Output matches as annotated blocks with underlines")
	searchCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printMatches(logger *zap.Logger, matches []tt.Match) {
	if !searchJSONOutput {
		if searchDecorated {
			fmt.Print(formatter.GenerateFormattedMatch(matches))
		} else {
			fmt.Print(formatter.FormatMatches(matches))
		}
		return
	}

	d, err := json.Marshal(matches)
	if err != nil {
		logger.Error("Error marshalling matches to JSON", zap.Error(err))
		return
	}
	if outPath == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(outPath)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
