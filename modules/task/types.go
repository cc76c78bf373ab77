package task

import (
	"context"
	"time"

	domain "github.com/haribabu1133/Smart-todo/domain/task"
)

// Filter restricts a list query by exact match on a field. An empty value
// means no restriction on that field. Search is a case-insensitive substring
// match on the title.
type Filter struct {
	Priority domain.Priority
	Status   domain.Status
	Category domain.Category
	Search   string
}

// OrderAssignment pairs a task id with its new sort position.
type OrderAssignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// CreateTaskRequest is the request for creating a task. Title is required;
// every other field falls back to its default when omitted.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct {
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// UpdateTaskRequest is the request for partially updating a task. Nil
// pointers leave the corresponding field unchanged.
type UpdateTaskRequest struct {
	TaskID      string     `json:"task_id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ReorderTasksRequest carries a batch of order assignments. The batch is
// applied as a single transaction; ids that no longer exist are skipped.
type ReorderTasksRequest struct {
	Tasks []OrderAssignment `json:"tasks"`
}

// ReorderTasksResponse reports how the batch was applied.
type ReorderTasksResponse struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// TaskResponse is the response for a single task.
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

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters (the HTTP API) and dependent modules (stats) interact
// with the core domain through this contract.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
	ReorderTasks(ctx context.Context, assignments []OrderAssignment) (*ReorderTasksResponse, error)
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Category:    string(t.Category),
		DueDate:     t.DueDate,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
