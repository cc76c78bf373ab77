package stats

import (
	"time"

	domain "github.com/haribabu1133/Smart-todo/domain/task"
)

// weeklyWindowDays is the size of the rolling activity window.
const weeklyWindowDays = 7

// Aggregate computes the dashboard summary from a snapshot of the task
// collection and a reference time. It is a pure function: no caching, no
// incremental state, recomputed from scratch on every call.
//
// The weekly window covers the 7 calendar days ending at and including the
// day of now, in now's location. A day counts a task as created when its
// CreatedAt falls inside the day, and as completed when its status is
// completed and its UpdatedAt falls inside the day. Completion history is
// not tracked: a task completed, reopened and completed again is counted
// only on the day of its most recent status-touching update.
func Aggregate(tasks []TaskSnapshot, now time.Time) Summary {
	summary := Summary{
		Weekly:        make([]DayActivity, 0, weeklyWindowDays),
		CategoryStats: make([]CategoryCount, 0, len(domain.Categories())),
	}

	summary.Total = len(tasks)
	for _, t := range tasks {
		if t.Status == string(domain.StatusCompleted) {
			summary.Completed++
		}
	}
	summary.Pending = summary.Total - summary.Completed

	for i := weeklyWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 1)

		activity := DayActivity{Day: start.Format("Mon")}
		for _, t := range tasks {
			if inDay(t.CreatedAt, start, end) {
				activity.Created++
			}
			if t.Status == string(domain.StatusCompleted) && inDay(t.UpdatedAt, start, end) {
				activity.Completed++
			}
		}
		summary.Weekly = append(summary.Weekly, activity)
	}

	for _, t := range tasks {
		switch domain.Priority(t.Priority) {
		case domain.PriorityHigh:
			summary.PriorityBreakdown.High++
		case domain.PriorityMedium:
			summary.PriorityBreakdown.Medium++
		case domain.PriorityLow:
			summary.PriorityBreakdown.Low++
		}
	}

	for _, category := range domain.Categories() {
		count := 0
		for _, t := range tasks {
			if t.Category == string(category) {
				count++
			}
		}
		summary.CategoryStats = append(summary.CategoryStats, CategoryCount{
			Name:  string(category),
			Count: count,
		})
	}

	return summary
}

// inDay reports whether ts falls within the half-open interval [start, end).
func inDay(ts, start, end time.Time) bool {
	return !ts.Before(start) && ts.Before(end)
}
