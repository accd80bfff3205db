package report

import (
	"fmt"
	"io"
	"os"
)

// SummaryWriter appends each record's summary to W.
type SummaryWriter struct {
	W io.Writer
}

// Report writes r's summary.
func (s SummaryWriter) Report(r Record) error {
	if _, err := r.WriteTo(s.W); err != nil {
		return fmt.Errorf("report: write summary: %w", err)
	}

	return nil
}

// SummaryFile truncates Path and writes the latest record's summary to it.
type SummaryFile struct {
	Path string
}

// Report replaces the file contents with r's summary.
func (s SummaryFile) Report(r Record) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", s.Path, err)
	}

	return f.Close()
}
