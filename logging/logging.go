// Package logging routes the standard logger to a per-binary file under logs/ in debug mode.
// The terminal frontend owns stdout and stderr, so nothing is ever logged there.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Dir is relative to the working directory
	Dir = "logs"

	// MaxSize is the size past which an existing log is rotated aside at startup
	MaxSize = 10 * 1024 * 1024
)

// Setup points the standard logger at logs/<name>.log when debug is set and returns the
// open file for the caller to close. Without debug, or when the file cannot be opened,
// log output is discarded and nil is returned.
func Setup(name string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(Dir, name+".log")
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== %s started (pid %d) ===", name, os.Getpid())
	return f
}

// rotate renames path to a timestamped sibling once it grows past MaxSize
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
