package app

import (
	"context"
	"log/slog"

	"github.com/codewandler/decider-go/core/decide"
)

// SagaManager wires one Saga to an ActionPublisher. Handle computes the
// follow-up actions for one action result and publishes them, returning
// whatever the publisher reports as successfully published.
type SagaManager[AR, A any] struct {
	saga      decide.Saga[AR, A]
	publisher ActionPublisher[A]
	log       *slog.Logger
	metrics   AppMetrics
}

func NewSagaManager[AR, A any](
	saga decide.Saga[AR, A],
	publisher ActionPublisher[A],
	opts ...ShellOption,
) *SagaManager[AR, A] {
	options := newShellOptions(opts)
	return &SagaManager[AR, A]{
		saga:      saga,
		publisher: publisher,
		log:       options.log.With(slog.String("saga", componentSagaManager)),
		metrics:   options.metrics,
	}
}

func (s *SagaManager[AR, A]) Handle(ctx context.Context, actionResult AR) ([]A, error) {
	defer s.metrics.HandleDuration(componentSagaManager).ObserveDuration()
	success := false
	defer func() { s.metrics.CommandsHandled(componentSagaManager, success) }()

	actions := s.saga.ComputeNewActions(actionResult)

	published, err := s.publisher.Publish(ctx, actions)
	if err != nil {
		return nil, err
	}

	success = true
	s.metrics.EventsProduced(componentSagaManager, len(published))
	s.log.Debug("handled", slog.Int("num_actions", len(published)))
	return published, nil
}
