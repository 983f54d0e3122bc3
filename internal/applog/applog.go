// Package applog routes the standard logger for the frontends.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup sends log output to the file at path, creating its directory.
// An empty path discards all output. The caller closes the returned file.
func Setup(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("applog: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("applog: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
