package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

// Record is one numbered search run.
type Record struct {
	Label    string
	Run      int
	Cost     float64
	Expanded int
	Found    bool
}

// Name returns label and run number joined, e.g. "astar2".
func (r Record) Name() string {
	return r.Label + strconv.Itoa(r.Run)
}

// WriteTo writes the summary text of r to w.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	var n int
	var err error
	if r.Found {
		n, err = fmt.Fprintf(w, "%s\nPath cost: %s\nNodes expanded: %d\n",
			r.Name(), strconv.FormatFloat(r.Cost, 'f', -1, 64), r.Expanded)
	} else {
		n, err = fmt.Fprintf(w, "%s\nPath: not found\nNodes expanded: %d\n", r.Name(), r.Expanded)
	}

	return int64(n), err
}

// Reporter receives run records.
type Reporter interface {
	Report(Record) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Record) error

// Report calls f(r).
func (f ReporterFunc) Report(r Record) error { return f(r) }

// Collector is an in-memory Reporter. Safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	records []Record
}

// Report appends r.
func (c *Collector) Report(r Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)

	return nil
}

// Records returns a copy of everything collected so far, in arrival order.
func (c *Collector) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)

	return out
}
