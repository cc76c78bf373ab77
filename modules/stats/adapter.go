package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// StatsPort defines the interface dependent modules use to request the
// dashboard summary.
type StatsPort interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

// statsAdapter wraps ServiceContainer for type-safe cross-module
// communication.
type statsAdapter struct {
	container mono.ServiceContainer
}

// NewStatsAdapter creates a new adapter for stats services.
func NewStatsAdapter(container mono.ServiceContainer) StatsPort {
	if container == nil {
		panic("stats adapter requires non-nil ServiceContainer")
	}
	return &statsAdapter{container: container}
}

// GetSummary fetches a freshly computed summary via the summary service.
func (a *statsAdapter) GetSummary(ctx context.Context) (*Summary, error) {
	req := SummaryRequest{}
	var resp Summary
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"summary",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("summary service call failed: %w", err)
	}
	return &resp, nil
}
