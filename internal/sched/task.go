package sched

// TaskID uniquely identifies a task in the scheduler.
type TaskID uint64

// Task represents one schedulable unit of work and the metrics it accumulates.
// The scheduler owns a task while it is pending; once completed, a snapshot is
// kept in the completion history and never touched again.
type Task struct {
	ID            TaskID
	Name          string // display label, not required to be unique
	BurstTime     int64  // total execution units required
	RemainingTime int64  // units still owed; <= 0 means completed
	ArrivalTime   int64  // simulated clock value at insertion

	// written once, at completion
	CompletionTime int64
	WaitingTime    int64 // TurnaroundTime - BurstTime
	TurnaroundTime int64 // CompletionTime - ArrivalTime
}

// NewTask creates a task with its full burst outstanding and zeroed metrics.
// NOTE: no validation happens here, the scheduler checks its inputs.
func NewTask(id TaskID, name string, burst, arrival int64) Task {
	return Task{
		ID:            id,
		Name:          name,
		BurstTime:     burst,
		RemainingTime: burst,
		ArrivalTime:   arrival,
	}
}

// Done reports whether the task has no execution time left.
func (t Task) Done() bool { return t.RemainingTime <= 0 }

// complete stamps the completion metrics at the given clock value.
func (t *Task) complete(now int64) {
	t.CompletionTime = now
	t.TurnaroundTime = t.CompletionTime - t.ArrivalTime
	t.WaitingTime = t.TurnaroundTime - t.BurstTime
}
