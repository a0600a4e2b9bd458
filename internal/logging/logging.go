package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "zfs-space-visualizer.log"

// sink is the shared append-only log destination. Error and Trace both
// write through it; Configure and SetTraceEnabled adjust it at startup.
type sink struct {
	mu      sync.Mutex
	path    string
	tracing bool
}

var shared = sink{path: defaultLogFile}

// Error appends the error to the log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	shared.mu.Lock()
	path := shared.path
	shared.mu.Unlock()

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	log.SetOutput(f)
	log.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	shared.mu.Lock()
	shared.tracing = enabled
	shared.mu.Unlock()
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON entry per event to the log file when tracing
// is enabled; otherwise it is a no-op.
func Trace(event string, payload interface{}) {
	shared.mu.Lock()
	enabled, path := shared.tracing, shared.path
	shared.mu.Unlock()
	if !enabled {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. An empty path keeps the default;
// missing parent directories are created.
func Configure(path string) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if strings.TrimSpace(path) == "" {
		shared.path = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		shared.path = defaultLogFile
		return
	}
	shared.path = path
}
