package api

import "time"

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest is the HTTP request for partially updating a task.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// ReorderRequest is the HTTP request for the drag-and-drop reorder batch.
type ReorderRequest struct {
	Tasks []ReorderAssignment `json:"tasks"`
}

// ReorderAssignment pairs a task id with its new position.
type ReorderAssignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderResponse reports how the batch was applied.
type ReorderResponse struct {
	Message string `json:"message"`
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors. Field is set for
// validation failures so the client can render a field-level message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
