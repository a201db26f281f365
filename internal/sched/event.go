// internal/sched/event.go

package sched

// EventKind represents the type of scheduler event
type EventKind int

const (
	EventEnqueue EventKind = iota
	EventPreempt
	EventFinish
)

// Event is emitted on every enqueue and every executed slice.
type Event struct {
	RunID     string
	Time      int64 // arrival time for enqueues, slice start for slices
	Kind      EventKind
	TaskID    TaskID
	Name      string
	Slice     int64 // units executed in this slice (0 for enqueues)
	Remaining int64 // remaining time after the slice
}

// EventSink consumes scheduler events synchronously, in emission order.
type EventSink interface {
	Handle(ev Event)
}

// SinkFunc adapts a plain function to an EventSink.
type SinkFunc func(ev Event)

func (f SinkFunc) Handle(ev Event) { f(ev) }

func (k EventKind) String() string {
	switch k {
	case EventEnqueue:
		return "Enqueued"
	case EventPreempt:
		return "Preempt"
	case EventFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}
