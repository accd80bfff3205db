// Package report turns search outcomes into numbered run records and fans
// them out to sinks.
//
// A Recorder keeps one run counter per label, so the first BFS run is
// "bfs1", the second "bfs2". Each record goes to every registered Reporter;
// sink failures are joined and returned rather than stopping the fan-out.
//
// Sinks:
//
//   - SummaryWriter: appends the text summary to an io.Writer.
//   - SummaryFile:   rewrites a file with the latest record only.
//   - Collector:     keeps every record in memory.
//
// Summary text:
//
//	bfs1
//	Path cost: 70
//	Nodes expanded: 1650
package report
