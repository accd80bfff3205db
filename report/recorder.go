package report

import (
	"errors"
	"sync"
)

// Recorder numbers runs per label and forwards them to its sinks.
type Recorder struct {
	mu    sync.Mutex
	runs  map[string]int
	sinks []Reporter
}

// NewRecorder returns a Recorder writing to sinks; nil sinks are skipped.
func NewRecorder(sinks ...Reporter) *Recorder {
	r := &Recorder{runs: make(map[string]int)}
	for _, s := range sinks {
		if s != nil {
			r.sinks = append(r.sinks, s)
		}
	}

	return r
}

// Observe records a run of label and returns the record together with the
// joined errors of any failing sinks.
func (r *Recorder) Observe(label string, cost float64, expanded int, found bool) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[label]++
	rec := Record{Label: label, Run: r.runs[label], Cost: cost, Expanded: expanded, Found: found}

	var errs []error
	for _, s := range r.sinks {
		if err := s.Report(rec); err != nil {
			errs = append(errs, err)
		}
	}

	return rec, errors.Join(errs...)
}

// Runs returns how many runs of label have been observed.
func (r *Recorder) Runs(label string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.runs[label]
}
