// Package logging configures apex/log for periscope's own diagnostics.
// The TUI owns the terminal, so log output goes to a file under the user's
// state directory; when that file cannot be opened logging is discarded
// rather than corrupting the display.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

const defaultLevel = "warn"

// Init sets up apex/log with a file handler at path and a level taken from
// the PERISCOPE_LOG environment variable. It returns a close function for
// the underlying file.
func Init(path string) func() {
	level := strings.ToLower(strings.TrimSpace(os.Getenv("PERISCOPE_LOG")))
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		level = defaultLevel
	}
	log.SetLevelFromString(level)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetHandler(&fileHandler{w: io.Discard})
		return func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetHandler(&fileHandler{w: io.Discard})
		return func() {}
	}
	log.SetHandler(&fileHandler{w: file})
	return func() { _ = file.Close() }
}

// DefaultPath returns the default diagnostics log location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "periscope.log")
	}
	return filepath.Join(home, ".local", "state", "periscope", "periscope.log")
}

// fileHandler formats entries as "timestamp LEVEL message k=v ...".
type fileHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// HandleLog implements the log.Handler interface.
func (h *fileHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", timestamp, level, e.Message)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}
