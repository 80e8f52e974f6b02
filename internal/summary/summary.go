package summary

import (
	"math"
	"time"
)

// RecentWindow is the trailing window counted by Report.RecentCompletions.
const RecentWindow = 7 * 24 * time.Hour

// Report holds aggregate statistics over a task set.
type Report struct {
	Total              int
	Completed          int
	Pending            int
	AccuracyPercentage int
	// CompletionByDay maps YYYY-MM-DD to the number of tasks completed that day.
	CompletionByDay   map[string]int
	RecentCompletions int
}

// Compute builds a Report for tasks as seen at now. Completion dates are
// interpreted as midnight in now's location.
func Compute(tasks []Task, now time.Time) Report {
	report := Report{
		Total:           len(tasks),
		CompletionByDay: make(map[string]int),
	}

	weekAgo := now.Add(-RecentWindow)

	for _, task := range tasks {
		if !task.Completed() {
			continue
		}
		report.Completed++

		day, ok := task.CompletedOn()
		if !ok {
			continue
		}
		report.CompletionByDay[day]++

		if at, _ := task.completedAtIn(now.Location()); !at.Before(weekAgo) {
			report.RecentCompletions++
		}
	}

	report.Pending = report.Total - report.Completed
	report.AccuracyPercentage = accuracy(report.Completed, report.Total)

	return report
}

// accuracy returns completed/total as a whole percentage, rounding halves to
// even. An empty set is 0%.
func accuracy(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(completed) / float64(total) * 100))
}
