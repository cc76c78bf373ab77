package stats

import "time"

// TaskSnapshot is the slice of task state the aggregator reads. Keeping it
// local decouples the aggregation from the task module's DTOs.
type TaskSnapshot struct {
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayActivity is one calendar day in the weekly window, labeled with the
// abbreviated weekday name.
type DayActivity struct {
	Day       string `json:"day"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// PriorityBreakdown counts tasks per priority across the whole collection.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CategoryCount is the task count for one category. Every known category is
// reported, zero-filled when unused.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the full dashboard statistics view: totals, the 7-day weekly
// window (oldest day first, ending today), and the priority and category
// breakdowns.
type Summary struct {
	Total             int               `json:"total"`
	Completed         int               `json:"completed"`
	Pending           int               `json:"pending"`
	Weekly            []DayActivity     `json:"weekly"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
	CategoryStats     []CategoryCount   `json:"category_stats"`
}

// SummaryRequest is the request for the summary service.
type SummaryRequest struct{}
