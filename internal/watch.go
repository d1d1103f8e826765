package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnolang/tgrep/internal/types"
)

// StartWatching begins re-scanning the given paths whenever one of their
// files is written to. Directories are watched recursively.
func (e *Engine) StartWatching(paths []string) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchPaths = paths

	for _, p := range paths {
		err := filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error adding path to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop()
	return nil
}

func (e *Engine) StopWatching() error {
	if !e.isWatching {
		log.Println("not watching")
		return nil
	}

	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		// wait for a while after file change to consider multiple changes as one
		time.Sleep(100 * time.Millisecond)
		matches, err := e.Run(event.Name)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		e.reportMatches(event.Name, matches)
	}
}

func (e *Engine) reportMatches(filename string, matches []types.Match) {
	if len(matches) == 0 {
		log.Printf("no matches in %s", filename)
		return
	}

	log.Printf("found %d matches in %s", len(matches), filename)
	for _, m := range matches {
		log.Printf("- %d:%d: %s", m.Line, m.Column, m.Text)
	}
}
