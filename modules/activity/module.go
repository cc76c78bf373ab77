package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/haribabu1133/Smart-todo/events"
)

// DefaultMaxEntries is the default cap on the retained activity log.
const DefaultMaxEntries = 500

// Entry is one recorded activity event.
type Entry struct {
	TaskID     string    `json:"task_id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecentRequest is the request for the recent service.
type RecentRequest struct {
	Limit int `json:"limit,omitempty"`
}

// RecentResponse is the response for the recent service.
type RecentResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// ActivityModule is a driven adapter that subscribes to task events and
// keeps a bounded in-memory log of recent activity.
type ActivityModule struct {
	mu         sync.RWMutex
	entries    []Entry
	maxEntries int
}

// Compile-time interface checks.
var _ mono.Module = (*ActivityModule)(nil)
var _ mono.ServiceProviderModule = (*ActivityModule)(nil)
var _ mono.EventConsumerModule = (*ActivityModule)(nil)

// NewModule creates a new ActivityModule with the default retention cap.
func NewModule() *ActivityModule {
	return &ActivityModule{
		entries:    make([]Entry, 0),
		maxEntries: DefaultMaxEntries,
	}
}

// Name returns the module name.
func (m *ActivityModule) Name() string {
	return "activity"
}

// RegisterEventConsumers subscribes to the task domain events.
func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TasksReorderedV1, m.handleTasksReordered, m); err != nil {
		return fmt.Errorf("failed to register TasksReordered consumer: %w", err)
	}

	log.Printf("[activity] Registered event consumers: TaskCreated, TaskCompleted, TaskDeleted, TasksReordered")
	return nil
}

// RegisterServices registers the recent request-reply service.
func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "recent", json.Unmarshal, json.Marshal, m.getRecent,
	); err != nil {
		return fmt.Errorf("failed to register recent service: %w", err)
	}

	log.Printf("[activity] Registered services: services.activity.recent")
	return nil
}

// Start starts the module.
func (m *ActivityModule) Start(_ context.Context) error {
	log.Println("[activity] Module started")
	return nil
}

// Stop stops the module.
func (m *ActivityModule) Stop(_ context.Context) error {
	log.Println("[activity] Module stopped")
	return nil
}

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.record(Entry{
		TaskID:     event.TaskID,
		Type:       "task_created",
		Message:    fmt.Sprintf("Task %q created (%s / %s)", event.Title, event.Priority, event.Category),
		OccurredAt: event.CreatedAt,
	})
	return nil
}

func (m *ActivityModule) handleTaskCompleted(_ context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	m.record(Entry{
		TaskID:     event.TaskID,
		Type:       "task_completed",
		Message:    fmt.Sprintf("Task %q completed", event.Title),
		OccurredAt: event.CompletedAt,
	})
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.record(Entry{
		TaskID:     event.TaskID,
		Type:       "task_deleted",
		Message:    fmt.Sprintf("Task %q deleted", event.Title),
		OccurredAt: event.DeletedAt,
	})
	return nil
}

func (m *ActivityModule) handleTasksReordered(_ context.Context, event events.TasksReorderedEvent, _ *mono.Msg) error {
	m.record(Entry{
		Type:       "tasks_reordered",
		Message:    fmt.Sprintf("%d tasks reordered (%d stale ids skipped)", event.Applied, event.Skipped),
		OccurredAt: event.ReorderedAt,
	})
	return nil
}

// record appends an entry, dropping the oldest entries once the cap is hit.
func (m *ActivityModule) record(entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	if len(m.entries) > m.maxEntries {
		excess := len(m.entries) - m.maxEntries
		m.entries = m.entries[excess:]
	}
}

// getRecent handles the recent service request, returning the newest
// entries last.
func (m *ActivityModule) getRecent(_ context.Context, req RecentRequest, _ *mono.Msg) (RecentResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := req.Limit
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}

	start := len(m.entries) - limit
	entries := make([]Entry, limit)
	copy(entries, m.entries[start:])

	return RecentResponse{
		Entries: entries,
		Total:   len(m.entries),
	}, nil
}
