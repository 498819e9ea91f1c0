package diagnostics

import (
	"log"
	"sync"
)

// Reporter is the sink for errors that are recovered or hidden from the user
// but still worth knowing about.
type Reporter interface {
	Report(scope string, err error)
}

type logReporter struct{}

// NewLogReporter returns a Reporter that writes to the standard logger.
func NewLogReporter() Reporter {
	return logReporter{}
}

func (logReporter) Report(scope string, err error) {
	if err == nil {
		return
	}
	log.Printf("[%s] error: %v", scope, err)
}

// Recorder keeps reported errors in memory. Useful in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is a single reported error.
type Entry struct {
	Scope string
	Err   error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(scope string, err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Scope: scope, Err: err})
}

// Entries returns a copy of everything reported so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
