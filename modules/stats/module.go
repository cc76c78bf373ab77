package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/haribabu1133/Smart-todo/modules/task"
)

// StatsModule computes derived read-only statistics over the task
// collection. It holds no persisted state of its own: every summary request
// re-reads the collection through the task port and aggregates it fresh.
// Clients poll this; there is no push channel.
type StatsModule struct {
	taskPort task.TaskPort
	now      func() time.Time
}

// Compile-time interface checks.
var _ mono.Module = (*StatsModule)(nil)
var _ mono.ServiceProviderModule = (*StatsModule)(nil)
var _ mono.DependentModule = (*StatsModule)(nil)

// NewModule creates a new StatsModule.
func NewModule() *StatsModule {
	return &StatsModule{
		now: time.Now,
	}
}

// Name returns the module name.
func (m *StatsModule) Name() string {
	return "stats"
}

// Dependencies returns the list of module dependencies.
func (m *StatsModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *StatsModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskPort = task.NewTaskAdapter(container)
	}
}

// RegisterServices registers the summary request-reply service.
func (m *StatsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "summary", json.Unmarshal, json.Marshal, m.getSummary,
	); err != nil {
		return fmt.Errorf("failed to register summary service: %w", err)
	}

	log.Printf("[stats] Registered services: services.stats.summary")
	return nil
}

// Start verifies the task dependency is wired.
func (m *StatsModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	log.Println("[stats] Module started (depends on: task)")
	return nil
}

// Stop shuts down the module.
func (m *StatsModule) Stop(_ context.Context) error {
	log.Println("[stats] Module stopped")
	return nil
}

// getSummary handles the summary service request. It fetches the full,
// unfiltered collection and aggregates it against the current time.
func (m *StatsModule) getSummary(ctx context.Context, _ SummaryRequest, _ *mono.Msg) (Summary, error) {
	resp, err := m.taskPort.ListTasks(ctx, &task.ListTasksRequest{})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	snapshots := make([]TaskSnapshot, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		snapshots = append(snapshots, TaskSnapshot{
			Status:    t.Status,
			Priority:  t.Priority,
			Category:  t.Category,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}

	return Aggregate(snapshots, m.now()), nil
}
