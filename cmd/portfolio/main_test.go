package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	applog "portfolio/internal/log"
)

// A startup failure comes back from run, after its deferred cleanups, rather
// than exiting the process.
func TestRunReturnsStartupErrors(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "not a url")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("TRACE_STDOUT", "false")
	t.Cleanup(func() { applog.Set(nil) })

	err := run()
	if err == nil {
		t.Fatal("expected an error for a bad REDIS_URL")
	}
	if !strings.Contains(err.Error(), "invalid redis URL") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(logFile); statErr != nil {
		t.Fatalf("log file not created before failing: %v", statErr)
	}
}
