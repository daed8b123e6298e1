package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStart EventType = "start"
	EventHalt  EventType = "halt"
)

// SimulationEvent marks the beginning or end of a simulation.
type SimulationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Operation Operation `json:"operation"`
	X         uint32    `json:"x"`
	Y         uint32    `json:"y"`

	// Result is only set on EventHalt.
	Result *Result `json:"result,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks never influence control flow: a simulation behaves identically with or without them.
type LifecycleHooks struct {
	OnStart func(context.Context, *SimulationEvent)
	OnStep  func(context.Context, *Step)
	OnHalt  func(context.Context, *SimulationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStart: chainEvent(h.OnStart, other.OnStart),
		OnStep:  chainStep(h.OnStep, other.OnStep),
		OnHalt:  chainEvent(h.OnHalt, other.OnHalt),
	}
}

func chainEvent(a, b func(context.Context, *SimulationEvent)) func(context.Context, *SimulationEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *SimulationEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainStep(a, b func(context.Context, *Step)) func(context.Context, *Step) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, s *Step) {
		a(ctx, s)
		b(ctx, s)
	}
}
