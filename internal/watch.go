package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/gym/internal/types"
)

// settleDelay groups the burst of write events an editor emits on save.
const settleDelay = 100 * time.Millisecond

// ReportFunc receives the results of a file that changed while watching.
type ReportFunc func(filename string, results []tt.Result, err error)

// StartWatching re-runs every .gym file below dirs whenever it is written.
func (e *Engine) StartWatching(dirs []string, report ReportFunc) error {
	if e.watcher != nil {
		return errors.New("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = watcher
	e.watchDirs = dirs
	e.stopWatch = make(chan struct{})
	go e.watchLoop(watcher, e.stopWatch, report)

	e.logger.Info("watching", zap.Strings("dirs", dirs))
	return nil
}

// StopWatching ends a StartWatching session.
func (e *Engine) StopWatching() error {
	if e.watcher == nil {
		return errors.New("not watching")
	}

	close(e.stopWatch)
	err := e.watcher.Close()
	e.watcher = nil
	e.watchDirs = nil
	return err
}

// Watching reports whether a watch session is active.
func (e *Engine) Watching() bool {
	return e.watcher != nil
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher, stop <-chan struct{}, report ReportFunc) {
	for {
		select {
		case <-stop:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, report)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, report ReportFunc) {
	if event.Op&fsnotify.Write != fsnotify.Write || !strings.HasSuffix(event.Name, ".gym") {
		return
	}

	time.Sleep(settleDelay)
	results, err := e.Run(event.Name)
	if err != nil {
		e.logger.Error("error processing file", zap.String("file", event.Name), zap.Error(err))
	} else {
		e.logger.Info("file processed",
			zap.String("file", event.Name),
			zap.Int("results", len(results)))
	}
	if report != nil {
		report(event.Name, results, err)
	}
}
