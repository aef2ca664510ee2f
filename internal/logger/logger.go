// Package logger prints dbconf diagnostics to stderr.
// Debug output only appears when verbose mode is enabled; Info and Warn are
// always written.
package logger

import (
	"io"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	std     = log.New(os.Stderr, "", 0)
)

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether debug output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects all log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		std.Printf("[DEBUG] "+format, args...)
	}
}

func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Printf("[INFO] "+format, args...)
}

func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Printf("[WARN] "+format, args...)
}

// RedactURL strips userinfo and the query string from a connection URL so it
// can be logged. Values that do not parse as a URL with a host are returned
// unchanged (plain file paths), except that anything after '?' is dropped.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		path, _, _ := strings.Cut(raw, "?")
		return path
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
