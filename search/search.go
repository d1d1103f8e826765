package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/tgrep/internal"
	tt "github.com/gnolang/tgrep/internal/types"
	"github.com/gnolang/tgrep/scanner"
)

const maxShowRecentFiles = 25

// Engine is the matching engine surface the processing pipeline needs.
type Engine interface {
	Run(filePath string) ([]tt.Match, error)
	RunSource(source []byte) ([]tt.Match, error)
	MatchLine(line string) bool
	IgnorePath(path string)
}

// New builds a search engine for patternText, applying the configuration
// file at configurationPath when it exists. A pattern alias defined in the
// configuration takes precedence over the raw text.
func New(patternText string, configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	if aliased, ok := config.Patterns[patternText]; ok {
		patternText = aliased
	}

	engine, err := internal.NewEngine(patternText)
	if err != nil {
		return nil, err
	}

	engine.SetMaxMatches(config.MaxMatches)
	for _, path := range config.IgnorePaths {
		engine.IgnorePath(strings.TrimSpace(path))
	}
	return engine, nil
}

// ProcessSources scans in-memory buffers through the engine.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources [][]byte,
	processor func(Engine, []byte) ([]tt.Match, error),
) ([]tt.Match, error) {
	var allMatches []tt.Match
	for i, source := range sources {
		sourceMatches, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allMatches = append(allMatches, sourceMatches...)
	}

	return allMatches, nil
}

// ProcessFiles scans every given path (file or directory) through the engine.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor func(Engine, string) ([]tt.Match, error),
	extensions ...string,
) ([]tt.Match, error) {
	var allMatches []tt.Match
	for _, path := range paths {
		matches, err := ProcessPath(ctx, logger, engine, path, processor, extensions...)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allMatches = append(allMatches, matches...)
	}

	return allMatches, nil
}

// ProcessPath scans one path. Directories are walked recursively; large
// file sets get a progress bar and a bounded worker pool.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor func(Engine, string) ([]tt.Match, error),
	extensions ...string,
) ([]tt.Match, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var matches []tt.Match
	if !info.IsDir() {
		fileMatches, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return append(matches, fileMatches...), nil
	}

	scannedFiles, err := scanner.New(path, extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	files := make([]string, 0, len(scannedFiles))
	for _, fi := range scannedFiles {
		files = append(files, fi.Path)
	}

	if len(files) <= maxShowRecentFiles {
		for _, fp := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			fileMatches, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				continue
			}
			matches = append(matches, fileMatches...)
		}
		return matches, nil
	}

	// mutex for recent files
	var recentFilesMutex sync.Mutex
	recentFiles := make([]string, maxShowRecentFiles)

	// make space for recent files
	for i := 0; i < maxShowRecentFiles+1; i++ {
		fmt.Println()
	}
	fmt.Printf("\033[%dA", maxShowRecentFiles+1)

	// channels for results and errors
	resultChan := make(chan []tt.Match, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// update recent files
	updateRecentFiles := func(filename string) {
		recentFilesMutex.Lock()
		defer recentFilesMutex.Unlock()

		// update the list
		for j := maxShowRecentFiles - 1; j > 0; j-- {
			recentFiles[j] = recentFiles[j-1]
		}
		recentFiles[0] = filename

		// move the cursor up
		fmt.Printf("\033[%dA", maxShowRecentFiles)

		// print the list
		for j := range recentFiles {
			if recentFiles[j] != "" {
				// \033[2K: clear the line
				// \r: move the cursor to the beginning of the line
				fmt.Printf("\033[2K\r%s\n", recentFiles[j])
			} else {
				fmt.Printf("\033[2K\r\n")
			}
		}
	}

	// for each file, run a goroutine
	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				// show the start of file processing
				updateRecentFiles(filepath.Base(fp))

				fileMatches, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- nil
				} else {
					resultChan <- fileMatches
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	// collect all results; every worker sends to both channels
	for range files {
		err := <-errorChan
		result := <-resultChan
		if err != nil {
			continue
		}
		if result != nil {
			matches = append(matches, result...)
		}
	}

	fmt.Println()
	return matches, nil
}

// ProcessFile scans a single file through the engine.
func ProcessFile(engine Engine, filePath string) ([]tt.Match, error) {
	return engine.Run(filePath)
}

// ProcessSource scans a single in-memory buffer through the engine.
func ProcessSource(engine Engine, source []byte) ([]tt.Match, error) {
	return engine.RunSource(source)
}
