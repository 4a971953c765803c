// Package potatolog provides an in-memory log sink for zerolog's JSON output,
// so that the log can be shown within the TUI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultMaxEntries is the number of entries a MemoryLogReaderWriter keeps by
// default; older entries are dropped.
const DefaultMaxEntries = 1000

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	log:        []LogEntry{},
	maxEntries: DefaultMaxEntries,
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It is safe for concurrent use.
type MemoryLogReaderWriter struct {
	mtx        sync.Mutex
	log        []LogEntry
	maxEntries int
}

// NewMemoryLogReaderWriter returns a pointer to a new MemoryLogReaderWriter
// which keeps at most the given number of entries (unlimited if not positive).
func NewMemoryLogReaderWriter(maxEntries int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:        []LogEntry{},
		maxEntries: maxEntries,
	}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.maxEntries > 0 && len(w.log) > w.maxEntries {
		w.log = append([]LogEntry(nil), w.log[len(w.log)-w.maxEntries:]...)
	}
	return len(p), nil
}

// Get returns (a copy of) the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry(nil), w.log...)
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
