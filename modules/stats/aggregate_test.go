package stats

import (
	"testing"
	"time"

	domain "github.com/haribabu1133/Smart-todo/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2024-03-20 noon UTC. The weekly window is Thu 14th .. Wed 20th.
var refNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func snapshot(status domain.Status, priority domain.Priority, category domain.Category, createdAt, updatedAt time.Time) TaskSnapshot {
	return TaskSnapshot{
		Status:    string(status),
		Priority:  string(priority),
		Category:  string(category),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func pendingAt(createdAt time.Time) TaskSnapshot {
	return snapshot(domain.StatusPending, domain.PriorityMedium, domain.CategoryPersonal, createdAt, createdAt)
}

func TestAggregate_TotalsConsistency(t *testing.T) {
	tasks := []TaskSnapshot{
		pendingAt(refNow),
		pendingAt(refNow),
		snapshot(domain.StatusCompleted, domain.PriorityHigh, domain.CategoryWork, refNow, refNow),
	}

	summary := Aggregate(tasks, refNow)

	assert.Equal(t, len(tasks), summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 2, summary.Pending)
	assert.Equal(t, summary.Total, summary.Completed+summary.Pending)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil, refNow)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Completed)
	assert.Zero(t, summary.Pending)
	require.Len(t, summary.Weekly, 7)
	for _, day := range summary.Weekly {
		assert.Zero(t, day.Created)
		assert.Zero(t, day.Completed)
	}
	require.Len(t, summary.CategoryStats, 6)
	for _, c := range summary.CategoryStats {
		assert.Zero(t, c.Count)
	}
}

func TestAggregate_WeeklyWindow(t *testing.T) {
	t.Run("labels cover the 7 days ending today, oldest first", func(t *testing.T) {
		summary := Aggregate(nil, refNow)

		require.Len(t, summary.Weekly, 7)
		assert.Equal(t, "Thu", summary.Weekly[0].Day)
		assert.Equal(t, "Wed", summary.Weekly[6].Day)
	})

	t.Run("day boundaries are inclusive of the last millisecond", func(t *testing.T) {
		endOfToday := time.Date(2024, 3, 20, 23, 59, 59, 999_000_000, time.UTC)
		startOfTomorrow := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)
		tasks := []TaskSnapshot{
			pendingAt(endOfToday),
			pendingAt(startOfTomorrow),
		}

		summary := Aggregate(tasks, refNow)

		// 23:59:59.999 belongs to today; midnight belongs to the day after
		// the window and is not counted anywhere.
		assert.Equal(t, 1, summary.Weekly[6].Created)
		total := 0
		for _, day := range summary.Weekly {
			total += day.Created
		}
		assert.Equal(t, 1, total)
	})

	t.Run("window excludes the 8th day back", func(t *testing.T) {
		oldestIncluded := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
		justOutside := time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC)
		tasks := []TaskSnapshot{
			pendingAt(oldestIncluded),
			pendingAt(justOutside),
		}

		summary := Aggregate(tasks, refNow)

		assert.Equal(t, 1, summary.Weekly[0].Created)
		total := 0
		for _, day := range summary.Weekly {
			total += day.Created
		}
		assert.Equal(t, 1, total)
	})

	t.Run("completed counts follow updatedAt, not createdAt", func(t *testing.T) {
		createdMonday := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)
		completedToday := refNow
		tasks := []TaskSnapshot{
			snapshot(domain.StatusCompleted, domain.PriorityMedium, domain.CategoryPersonal, createdMonday, completedToday),
		}

		summary := Aggregate(tasks, refNow)

		// Monday is index 4 (Thu=0 .. Wed=6).
		assert.Equal(t, 1, summary.Weekly[4].Created)
		assert.Equal(t, 0, summary.Weekly[4].Completed)
		assert.Equal(t, 1, summary.Weekly[6].Completed)
	})

	// Known semantic: completion history is not tracked. A task completed on
	// Monday, reopened, and completed again today carries only its latest
	// updatedAt, so Monday's completed count stays at zero.
	t.Run("recompleted task counts only on its latest update day", func(t *testing.T) {
		createdMonday := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)
		recompletedToday := refNow
		tasks := []TaskSnapshot{
			snapshot(domain.StatusCompleted, domain.PriorityMedium, domain.CategoryPersonal, createdMonday, recompletedToday),
		}

		summary := Aggregate(tasks, refNow)

		assert.Equal(t, 0, summary.Weekly[4].Completed)
		assert.Equal(t, 1, summary.Weekly[6].Completed)
	})

	t.Run("pending tasks never count as completed", func(t *testing.T) {
		tasks := []TaskSnapshot{pendingAt(refNow)}

		summary := Aggregate(tasks, refNow)

		assert.Equal(t, 1, summary.Weekly[6].Created)
		assert.Equal(t, 0, summary.Weekly[6].Completed)
	})
}

func TestAggregate_PriorityBreakdown(t *testing.T) {
	old := refNow.AddDate(0, -1, 0)
	tasks := []TaskSnapshot{
		snapshot(domain.StatusPending, domain.PriorityHigh, domain.CategoryWork, old, old),
		snapshot(domain.StatusPending, domain.PriorityHigh, domain.CategoryWork, refNow, refNow),
		snapshot(domain.StatusPending, domain.PriorityMedium, domain.CategoryWork, refNow, refNow),
		snapshot(domain.StatusCompleted, domain.PriorityLow, domain.CategoryWork, old, old),
	}

	summary := Aggregate(tasks, refNow)

	// Not time-windowed: the month-old task still counts.
	assert.Equal(t, 2, summary.PriorityBreakdown.High)
	assert.Equal(t, 1, summary.PriorityBreakdown.Medium)
	assert.Equal(t, 1, summary.PriorityBreakdown.Low)
}

func TestAggregate_CategoryCompleteness(t *testing.T) {
	tasks := []TaskSnapshot{
		snapshot(domain.StatusPending, domain.PriorityMedium, domain.CategoryHealth, refNow, refNow),
		snapshot(domain.StatusPending, domain.PriorityMedium, domain.CategoryHealth, refNow, refNow),
	}

	summary := Aggregate(tasks, refNow)

	require.Len(t, summary.CategoryStats, 6)

	byName := make(map[string]int, len(summary.CategoryStats))
	for _, c := range summary.CategoryStats {
		assert.GreaterOrEqual(t, c.Count, 0)
		byName[c.Name] = c.Count
	}

	for _, category := range domain.Categories() {
		assert.Contains(t, byName, string(category))
	}
	assert.Equal(t, 2, byName[string(domain.CategoryHealth)])
	assert.Equal(t, 0, byName[string(domain.CategoryFinance)])
}
