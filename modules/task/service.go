package task

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
	domain "github.com/haribabu1133/Smart-todo/domain/task"
	"github.com/haribabu1133/Smart-todo/events"
)

// createTask handles the create service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return TaskResponse{}, newValidationError("title", "title is required")
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.Valid() {
			return TaskResponse{}, newValidationError("priority", fmt.Sprintf("unknown priority %q", req.Priority))
		}
	}

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.Status(req.Status)
		if !status.Valid() {
			return TaskResponse{}, newValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
		}
	}

	category := domain.CategoryPersonal
	if req.Category != "" {
		category = domain.Category(req.Category)
		if !category.Valid() {
			return TaskResponse{}, newValidationError("category", fmt.Sprintf("unknown category %q", req.Category))
		}
	}

	newTask := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    priority,
		Status:      status,
		Category:    category,
		DueDate:     req.DueDate,
	}

	// The store assigns Order and timestamps on insert.
	if err := m.store.Create(newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    newTask.ID,
			Title:     newTask.Title,
			Priority:  string(newTask.Priority),
			Category:  string(newTask.Category),
			CreatedAt: newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", newTask.ID, err)
		}
	}

	return toTaskResponse(newTask), nil
}

// getTask handles the get service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.store.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

// listTasks handles the list service request. An empty result is a success,
// not an error.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	filter := Filter{
		Priority: domain.Priority(req.Priority),
		Status:   domain.Status(req.Status),
		Category: domain.Category(req.Category),
		Search:   req.Search,
	}

	tasks, err := m.store.List(filter)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for i := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(&tasks[i]))
	}
	return response, nil
}

// updateTask handles the update service request. Only supplied fields are
// applied, but UpdatedAt is refreshed even when the update is a value-level
// no-op: the weekly completed statistic depends on it.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.store.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return TaskResponse{}, newValidationError("title", "title cannot be empty")
		}
		t.Title = title
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.Valid() {
			return TaskResponse{}, newValidationError("priority", fmt.Sprintf("unknown priority %q", *req.Priority))
		}
		t.Priority = priority
	}

	wasCompleted := t.Status == domain.StatusCompleted
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			return TaskResponse{}, newValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		t.Status = status
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		if !category.Valid() {
			return TaskResponse{}, newValidationError("category", fmt.Sprintf("unknown category %q", *req.Category))
		}
		t.Category = category
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}

	if err := m.store.Update(t); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	if m.eventBus != nil && !wasCompleted && t.Status == domain.StatusCompleted {
		event := events.TaskCompletedEvent{
			TaskID:      t.ID,
			Title:       t.Title,
			CompletedAt: t.UpdatedAt,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %s: %v", t.ID, err)
		}
	}

	return toTaskResponse(t), nil
}

// deleteTask handles the delete service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	t, err := m.store.FindByID(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.TaskID}, err
	}

	if err := m.store.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.TaskID}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    t.ID,
			Title:     t.Title,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", t.ID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true, ID: req.TaskID}, nil
}

// reorderTasks handles the reorder service request. The whole batch is
// applied in one store transaction; a failure leaves every position at its
// pre-batch value and the caller re-fetches the list rather than retrying.
func (m *TaskModule) reorderTasks(_ context.Context, req ReorderTasksRequest, _ *mono.Msg) (ReorderTasksResponse, error) {
	if len(req.Tasks) == 0 {
		return ReorderTasksResponse{}, nil
	}

	applied, err := m.store.Reorder(req.Tasks)
	if err != nil {
		return ReorderTasksResponse{}, err
	}
	skipped := len(req.Tasks) - applied

	if m.eventBus != nil {
		event := events.TasksReorderedEvent{
			Applied:     applied,
			Skipped:     skipped,
			ReorderedAt: time.Now(),
		}
		if err := events.TasksReorderedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TasksReordered event: %v", err)
		}
	}

	return ReorderTasksResponse{Applied: applied, Skipped: skipped}, nil
}
