package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"rrsim/internal/sched"
)

var csvHeader = []string{"run_id", "time", "event", "task_id", "name", "slice", "remaining"}

// CSVTrace writes every scheduler event as a CSV row. Write errors are kept
// and reported by Close, since sinks cannot fail a running simulation.
type CSVTrace struct {
	closer io.Closer
	w      *csv.Writer
	err    error
}

// NewCSVTrace creates (or truncates) the file at path and writes the header.
func NewCSVTrace(path string) (*CSVTrace, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace csv: %w", err)
	}
	t := NewCSVTraceWriter(f)
	t.closer = f
	if t.err != nil {
		f.Close()
		return nil, t.err
	}
	return t, nil
}

// NewCSVTraceWriter writes the trace to w; Close only flushes.
func NewCSVTraceWriter(w io.Writer) *CSVTrace {
	t := &CSVTrace{w: csv.NewWriter(w)}
	t.write(csvHeader)
	return t
}

// Handle implements sched.EventSink.
func (t *CSVTrace) Handle(ev sched.Event) {
	t.write([]string{
		ev.RunID,
		strconv.FormatInt(ev.Time, 10),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.TaskID), 10),
		ev.Name,
		strconv.FormatInt(ev.Slice, 10),
		strconv.FormatInt(ev.Remaining, 10),
	})
}

func (t *CSVTrace) write(rec []string) {
	if t.err != nil {
		return
	}
	if err := t.w.Write(rec); err != nil {
		t.err = fmt.Errorf("write trace csv: %w", err)
	}
}

// Close flushes pending rows, closes the underlying file if any and returns
// the first error seen.
func (t *CSVTrace) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil && t.err == nil {
		t.err = fmt.Errorf("flush trace csv: %w", err)
	}
	if t.closer != nil {
		if err := t.closer.Close(); err != nil && t.err == nil {
			t.err = err
		}
	}
	return t.err
}
