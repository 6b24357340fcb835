package app

import (
	"context"
	"log/slog"

	"github.com/codewandler/decider-go/core/decide"
)

// MaterializedView wires one View to a ViewStateRepository. Handle applies
// one event to the projection state it addresses.
type MaterializedView[S, E any] struct {
	view    decide.View[S, E]
	repo    ViewStateRepository[E, S]
	log     *slog.Logger
	metrics AppMetrics
}

func NewMaterializedView[S, E any](
	view decide.View[S, E],
	repo ViewStateRepository[E, S],
	opts ...ShellOption,
) *MaterializedView[S, E] {
	options := newShellOptions(opts)
	return &MaterializedView[S, E]{
		view:    view,
		repo:    repo,
		log:     options.log.With(slog.String("view", componentMaterializedView)),
		metrics: options.metrics,
	}
}

func (m *MaterializedView[S, E]) Handle(ctx context.Context, event E) (S, error) {
	defer m.metrics.HandleDuration(componentMaterializedView).ObserveDuration()
	success := false
	defer func() { m.metrics.CommandsHandled(componentMaterializedView, success) }()

	current, err := m.repo.FetchState(ctx, event)
	if err != nil {
		var zero S
		return zero, err
	}

	state := m.view.ComputeNewState(current, []E{event})

	saved, err := m.repo.Save(ctx, state)
	if err != nil {
		var zero S
		return zero, err
	}

	success = true
	m.log.Debug("handled")
	return saved, nil
}
