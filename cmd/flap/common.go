package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

// loadRules loads the rules table and logs where it came from.
func loadRules() (config.Rules, error) {
	rules, source, err := config.Load(settings.ConfigPath)
	if err != nil {
		return config.Rules{}, err
	}
	logger.Debug("rules loaded", "source", source)
	for _, w := range rules.Warnings() {
		logger.Warn("unusual rules table", "warning", w)
	}
	return rules, nil
}

func openSlots() (*storage.SlotStore, error) {
	return storage.OpenSlots(settings.SaveDir)
}

// openHistory opens the run history. Callers may continue without it.
func openHistory() (*storage.Store, error) {
	return storage.Open(settings.DBPath)
}

// parseSlot parses a 1-based slot argument.
func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 || slot > storage.SlotCount {
		return 0, fmt.Errorf("slot must be 1-%d, got %q", storage.SlotCount, arg)
	}
	return slot, nil
}

func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// redirectLogs sends log output to the log file while a full-screen program
// owns the terminal. The returned closer restores stderr.
func redirectLogs() io.Closer {
	path, err := storage.ExpandHome(settings.LogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		logger.Warn("cannot open log file, logs are discarded while playing", "error", err)
		logger.SetOutput(io.Discard)
		return closerFunc(func() error {
			logger.SetOutput(os.Stderr)
			return nil
		})
	}

	logger.SetOutput(f)
	return closerFunc(func() error {
		logger.SetOutput(os.Stderr)
		return f.Close()
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
