package trace

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Observer receives timing and event notifications from the core.
// Implementations must be safe for concurrent use: block processors call
// Phase from every worker goroutine.
type Observer interface {
	// Phase marks the start of a named span and returns a function that
	// marks its end. Typical use: defer obs.Phase("rMerging")().
	Phase(name string) func()

	// Event records a discrete, non-timed occurrence.
	Event(name string, fields ...any)
}

type noopObserver struct{}

func (noopObserver) Phase(string) func() { return func() {} }
func (noopObserver) Event(string, ...any) {}

// Noop returns an Observer whose methods do nothing, at effectively zero
// cost. It is the default used when no observer is supplied.
func Noop() Observer { return noopObserver{} }

type logObserver struct {
	logger *log.Logger
	runID  string
}

// NewLog returns an Observer that writes one line per Phase completion
// and Event to w, each tagged with runID so concurrent runs (or repeated
// runs writing to the same file) can be told apart.
func NewLog(w io.Writer, runID string) Observer {
	return &logObserver{
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		runID:  runID,
	}
}

func (o *logObserver) Phase(name string) func() {
	start := time.Now()
	return func() {
		o.logger.Printf("run=%s phase=%s duration=%s", o.runID, name, time.Since(start))
	}
}

func (o *logObserver) Event(name string, fields ...any) {
	o.logger.Printf("run=%s event=%s %s", o.runID, name, fmt.Sprint(fields...))
}
