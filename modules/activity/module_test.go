package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/haribabu1133/Smart-todo/events"
)

func TestActivityModule_RecordsTaskEvents(t *testing.T) {
	m := NewModule()
	ctx := context.Background()
	now := time.Now()

	if err := m.handleTaskCreated(ctx, events.TaskCreatedEvent{
		TaskID:    "task-1",
		Title:     "Buy Milk",
		Priority:  "Medium",
		Category:  "Personal",
		CreatedAt: now,
	}, nil); err != nil {
		t.Fatalf("handleTaskCreated() error = %v", err)
	}

	if err := m.handleTaskCompleted(ctx, events.TaskCompletedEvent{
		TaskID:      "task-1",
		Title:       "Buy Milk",
		CompletedAt: now,
	}, nil); err != nil {
		t.Fatalf("handleTaskCompleted() error = %v", err)
	}

	resp, err := m.getRecent(ctx, RecentRequest{}, nil)
	if err != nil {
		t.Fatalf("getRecent() error = %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", resp.Total)
	}
	if resp.Entries[0].Type != "task_created" {
		t.Errorf("expected task_created first, got %q", resp.Entries[0].Type)
	}
	if resp.Entries[1].Type != "task_completed" {
		t.Errorf("expected task_completed second, got %q", resp.Entries[1].Type)
	}
}

func TestActivityModule_RecentLimit(t *testing.T) {
	m := NewModule()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		m.record(Entry{
			TaskID:     fmt.Sprintf("task-%d", i),
			Type:       "task_created",
			OccurredAt: time.Now(),
		})
	}

	resp, err := m.getRecent(ctx, RecentRequest{Limit: 2}, nil)
	if err != nil {
		t.Fatalf("getRecent() error = %v", err)
	}

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Total != 5 {
		t.Errorf("expected total 5, got %d", resp.Total)
	}
	// Newest entries win.
	if resp.Entries[1].TaskID != "task-4" {
		t.Errorf("expected task-4 last, got %q", resp.Entries[1].TaskID)
	}
}

func TestActivityModule_BoundedRetention(t *testing.T) {
	m := &ActivityModule{
		entries:    make([]Entry, 0),
		maxEntries: 3,
	}

	for i := 0; i < 10; i++ {
		m.record(Entry{TaskID: fmt.Sprintf("task-%d", i)})
	}

	resp, err := m.getRecent(context.Background(), RecentRequest{}, nil)
	if err != nil {
		t.Fatalf("getRecent() error = %v", err)
	}

	if resp.Total != 3 {
		t.Fatalf("expected retention cap of 3, got %d", resp.Total)
	}
	// Oldest entries are dropped first.
	if resp.Entries[0].TaskID != "task-7" {
		t.Errorf("expected task-7 oldest retained, got %q", resp.Entries[0].TaskID)
	}
}
