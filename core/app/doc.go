// Package app wires the pure decision components from core/decide to
// repository and publisher ports.
//
// The shells in this package are thin and fail fast: fetch, compute, save.
// They hold no locks, spawn no goroutines and never retry; optimistic
// concurrency is the port's responsibility. The version token observed on
// fetch is handed back to save unmodified.
//
//   - [EventSourced] / [StateStored] wire one Decider to a repository.
//   - [EventSourcedOrchestrating] / [StateStoredOrchestrating] additionally
//     wire a Saga and cascade follow-up commands recursively, persisting the
//     whole cascade in one save.
//   - [MaterializedView] wires a View to a view-state repository.
//   - [SagaManager] wires a Saga to an action publisher.
//
// In-memory port implementations are provided for tests and development.
package app
