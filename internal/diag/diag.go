package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents diagnostic severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Fields represents structured diagnostic fields
type Fields map[string]interface{}

// Reporter receives diagnostic events from the extraction and traversal
// components. Components never log through package globals; a Reporter is
// injected at construction time.
type Reporter interface {
	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Warn(message string, fields Fields)
	Error(message string, fields Fields, err error)
}

// entry is a single serialized diagnostic record
type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// JSONReporter writes one JSON object per diagnostic event. Safe for use
// from a single goroutine per run; the mutex only guards interleaving when
// several runs share one writer.
type JSONReporter struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

// New creates a JSONReporter with the given minimum level and output.
// Events below the minimum level are discarded.
func New(level Level, output io.Writer) *JSONReporter {
	return &JSONReporter{
		minLevel: level,
		output:   output,
	}
}

// Debug reports detailed per-row diagnostics (skips, fallbacks, fetch attempts).
func (r *JSONReporter) Debug(message string, fields Fields) {
	r.report(LevelDebug, message, fields, nil)
}

// Info reports run-level progress.
func (r *JSONReporter) Info(message string, fields Fields) {
	r.report(LevelInfo, message, fields, nil)
}

// Warn reports unexpected but non-fatal conditions, such as zero games after
// both extraction passes.
func (r *JSONReporter) Warn(message string, fields Fields) {
	r.report(LevelWarn, message, fields, nil)
}

// Error reports failures with the underlying error attached.
func (r *JSONReporter) Error(message string, fields Fields, err error) {
	r.report(LevelError, message, fields, err)
}

func (r *JSONReporter) report(level Level, message string, fields Fields, err error) {
	if !r.shouldReport(level) {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)

	r.mu.Lock()
	defer r.mu.Unlock()
	if marshalErr != nil {
		// Fall back to plain text if JSON marshal fails
		fmt.Fprintf(r.output, "[%s] %s: %s (marshal error: %v)\n",
			e.Timestamp, e.Level, e.Message, marshalErr)
		return
	}
	fmt.Fprintln(r.output, string(data))
}

func (r *JSONReporter) shouldReport(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[r.minLevel]
}

// Discard is a Reporter that drops every event. Useful in tests and for
// callers that want a silent run.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Debug(string, Fields)        {}
func (discard) Info(string, Fields)         {}
func (discard) Warn(string, Fields)         {}
func (discard) Error(string, Fields, error) {}
