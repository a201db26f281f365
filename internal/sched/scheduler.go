// internal/sched/scheduler.go

package sched

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateFinished
)

// Scheduler implements a round-robin scheduler over a simulated clock and
// streams every slice to its sinks.
type Scheduler struct {
	// Scheduler-related
	quantum int64                  // maximum contiguous units a task runs per turn
	clock   Clock                  // simulated clock, advanced only by executed slices
	counter TaskID                 // last assigned task ID
	slots   []Task                 // owned task state, indexed by slot
	ring    *linkedlistqueue.Queue // slot indices of pending tasks; the front is the cursor
	state   runState               // idle until the first slice, finished once the ring drains
	slices  int                    // executed slices

	// completion history, append order = completion order
	history []Task
	byID    *redblacktree.Tree // TaskID -> index into history

	// logging-related
	runID uuid.UUID
	log   zerolog.Logger
	sinks []EventSink
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger the scheduler reports its progress to.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithSink registers a consumer for enqueue and slice events.
func WithSink(sink EventSink) Option {
	return func(s *Scheduler) { s.sinks = append(s.sinks, sink) }
}

// New creates a scheduler granting each task at most quantum units per turn.
func New(quantum int64, opts ...Option) (*Scheduler, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("new scheduler with quantum %d: %w", quantum, ErrInvalidQuantum)
	}

	s := &Scheduler{
		quantum: quantum,
		ring:    linkedlistqueue.New(),
		byID:    redblacktree.NewWith(cmp),
		runID:   uuid.New(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("run_id", s.runID.String()).Logger()
	return s, nil
}

// Add enqueues a task at the tail of the ring and emits an EventEnqueue.
// The task arrives at the current simulated time.
func (s *Scheduler) Add(name string, burst int64) (TaskID, error) {
	if s.state != stateIdle {
		return 0, fmt.Errorf("add task %q: %w", name, ErrAlreadyStarted)
	}
	if burst <= 0 {
		return 0, fmt.Errorf("add task %q with burst %d: %w", name, burst, ErrInvalidBurstTime)
	}

	s.counter++
	t := NewTask(s.counter, name, burst, s.clock.Now())
	s.slots = append(s.slots, t)
	s.ring.Enqueue(len(s.slots) - 1)

	s.log.Debug().
		Uint64("task_id", uint64(t.ID)).
		Str("name", t.Name).
		Int64("burst", t.BurstTime).
		Int64("arrival", t.ArrivalTime).
		Msg("task enqueued")

	s.emit(Event{
		Time:      t.ArrivalTime,
		Kind:      EventEnqueue,
		TaskID:    t.ID,
		Name:      t.Name,
		Remaining: t.RemainingTime,
	})
	return t.ID, nil
}

// Run executes the simulation to completion. It returns once every task has
// finished; calling it again afterwards does nothing.
func (s *Scheduler) Run() {
	if s.state == stateIdle {
		s.log.Info().
			Int64("quantum", s.quantum).
			Int("tasks", s.ring.Size()).
			Msg("simulation started")
	}
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}
}

// Step executes exactly one slice and returns the event describing it.
// It returns false once no pending task is left.
func (s *Scheduler) Step() (Event, bool) {
	if s.state == stateIdle {
		s.state = stateRunning
	}

	// 1) pick the task under the cursor
	v, ok := s.ring.Dequeue()
	if !ok {
		s.finish()
		return Event{}, false
	}
	slot := v.(int)
	t := &s.slots[slot]

	// 2) run it for at most one quantum
	slice := min(t.RemainingTime, s.quantum)
	ev := Event{
		Time:      s.clock.Now(),
		Kind:      EventPreempt,
		TaskID:    t.ID,
		Name:      t.Name,
		Slice:     slice,
		Remaining: t.RemainingTime - slice,
	}
	t.RemainingTime -= slice
	s.clock.Advance(slice)
	s.slices++

	// 3) finish or requeue behind every other pending task
	if t.Done() {
		ev.Kind = EventFinish
		t.complete(s.clock.Now())
		s.history = append(s.history, *t)
		s.byID.Put(t.ID, len(s.history)-1)

		s.log.Debug().
			Uint64("task_id", uint64(t.ID)).
			Str("name", t.Name).
			Int64("completion", t.CompletionTime).
			Int64("waiting", t.WaitingTime).
			Int64("turnaround", t.TurnaroundTime).
			Msg("task finished")
	} else {
		s.ring.Enqueue(slot)

		s.log.Debug().
			Uint64("task_id", uint64(t.ID)).
			Str("name", t.Name).
			Int64("remaining", t.RemainingTime).
			Msg("task preempted")
	}

	s.emit(ev)

	if s.ring.Empty() {
		s.finish()
	}
	return ev, true
}

func (s *Scheduler) finish() {
	if s.state == stateFinished {
		return
	}
	s.state = stateFinished
	s.log.Info().
		Int64("clock", s.clock.Now()).
		Int("completed", len(s.history)).
		Int("slices", s.slices).
		Msg("simulation complete")
}

func (s *Scheduler) emit(ev Event) {
	ev.RunID = s.runID.String()
	for _, sink := range s.sinks {
		sink.Handle(ev)
	}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() int64 { return s.clock.Now() }

// Quantum returns the time slice granted per turn.
func (s *Scheduler) Quantum() int64 { return s.quantum }

// Pending returns the number of tasks still in the ring.
func (s *Scheduler) Pending() int { return s.ring.Size() }

// Finished reports whether the ring has been drained by a run.
func (s *Scheduler) Finished() bool { return s.state == stateFinished }

// RunID identifies this scheduler instance in logs and traces.
func (s *Scheduler) RunID() uuid.UUID { return s.runID }

// Completed returns a copy of the completion history in completion order.
func (s *Scheduler) Completed() []Task {
	out := make([]Task, len(s.history))
	copy(out, s.history)
	return out
}

// Lookup returns the completed task with the given ID.
func (s *Scheduler) Lookup(id TaskID) (Task, bool) {
	v, found := s.byID.Get(id)
	if !found {
		return Task{}, false
	}
	return s.history[v.(int)], true
}

// cmp orders the completion index by task ID.
func cmp(a, b any) int {
	ka, kb := a.(TaskID), b.(TaskID)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
