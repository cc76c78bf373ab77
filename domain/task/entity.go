package task

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Priorities returns all priority values, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Status represents the state of a task. Transitions are unconstrained:
// a completed task can be reopened at any time.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// Category groups tasks for filtering and the dashboard breakdown.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryStudy    Category = "Study"
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryOther    Category = "Other"
)

// Valid reports whether c is one of the known category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryFinance, CategoryOther:
		return true
	}
	return false
}

// Categories returns all category values in display order. The dashboard
// breakdown reports every one of these, zero-filled when unused.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryStudy,
		CategoryHealth,
		CategoryFinance,
		CategoryOther,
	}
}

// Task is the core domain entity representing a todo item.
//
// Order is a global sort key shared by all tasks, not a per-category
// position. Values need not be contiguous or unique; ties are broken by
// CreatedAt descending so the default listing is deterministic. The column
// is named sort_order because "order" is an SQL keyword.
type Task struct {
	ID          string     `gorm:"primarykey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	Priority    Priority   `gorm:"size:10;not null;default:Medium" json:"priority"`
	Status      Status     `gorm:"size:10;not null;default:pending" json:"status"`
	Category    Category   `gorm:"size:10;not null;default:Personal" json:"category"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Order       int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
