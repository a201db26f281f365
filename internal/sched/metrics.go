package sched

// TaskMetrics is the per-task row of a Report.
type TaskMetrics struct {
	ID             TaskID
	Name           string
	BurstTime      int64
	ArrivalTime    int64
	CompletionTime int64
	WaitingTime    int64
	TurnaroundTime int64
}

// Report summarises the completed tasks of a scheduler.
type Report struct {
	Tasks             []TaskMetrics // completion order
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	TotalTime         int64 // simulated clock when the report was taken
	Slices            int   // slices executed so far
}

// Empty reports whether no task has completed.
func (r Report) Empty() bool { return len(r.Tasks) == 0 }

// Metrics aggregates the completion history. Averages are only computed over
// completed tasks and stay zero when there are none.
func (s *Scheduler) Metrics() Report {
	r := Report{
		Tasks:     make([]TaskMetrics, 0, len(s.history)),
		TotalTime: s.clock.Now(),
		Slices:    s.slices,
	}
	if len(s.history) == 0 {
		return r
	}

	var waiting, turnaround int64
	for _, t := range s.history {
		r.Tasks = append(r.Tasks, TaskMetrics{
			ID:             t.ID,
			Name:           t.Name,
			BurstTime:      t.BurstTime,
			ArrivalTime:    t.ArrivalTime,
			CompletionTime: t.CompletionTime,
			WaitingTime:    t.WaitingTime,
			TurnaroundTime: t.TurnaroundTime,
		})
		waiting += t.WaitingTime
		turnaround += t.TurnaroundTime
	}

	n := float64(len(s.history))
	r.AvgWaitingTime = float64(waiting) / n
	r.AvgTurnaroundTime = float64(turnaround) / n
	return r
}
