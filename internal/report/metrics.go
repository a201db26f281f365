package report

import (
	"fmt"
	"io"

	"rrsim/internal/sched"
)

// WriteMetrics prints the per-task table and the averages of r.
func WriteMetrics(w io.Writer, r sched.Report) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, "No tasks were executed.")
		return err
	}

	row := "%-5v%-15v%-15v%-15v%-20v\n"
	if _, err := fmt.Fprintf(w, "\nPerformance Metrics\n"+row,
		"ID", "Name", "Burst Time", "Waiting Time", "Turnaround Time"); err != nil {
		return err
	}
	for _, t := range r.Tasks {
		if _, err := fmt.Fprintf(w, row, t.ID, t.Name, t.BurstTime, t.WaitingTime, t.TurnaroundTime); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nAverage Waiting Time: %.6gms\nAverage Turnaround Time: %.6gms\n",
		r.AvgWaitingTime, r.AvgTurnaroundTime)
	return err
}
