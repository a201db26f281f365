package report

import (
	"fmt"
	"io"

	"rrsim/internal/sched"
)

// ConsoleTrace prints one line per executed slice. Enqueue events are skipped
// for the brevity of output.
type ConsoleTrace struct {
	W io.Writer
}

// Handle implements sched.EventSink.
func (c ConsoleTrace) Handle(ev sched.Event) {
	if ev.Kind == sched.EventEnqueue {
		return
	}
	fmt.Fprintf(c.W, "Time %d: Executing task %s for %dms (remaining: %dms)\n",
		ev.Time, ev.Name, ev.Slice, ev.Remaining)
}
