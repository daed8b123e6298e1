package ports

import (
	"context"

	"github.com/aretw0/tmsim/pkg/domain"
)

// Simulator is the engine surface consumed by transport adapters.
type Simulator interface {
	// Run simulates op on x and y; trace requests the step records.
	Run(ctx context.Context, op domain.Operation, x, y uint32, trace bool) (*domain.Record, error)

	// RunTape simulates op on a raw tape in its textual form.
	RunTape(ctx context.Context, op domain.Operation, tape string, trace bool) (*domain.Record, error)

	// States returns the static state table of op's machine.
	States(op domain.Operation) ([]domain.StateSpec, error)

	// Store returns the configured result store, or nil.
	Store() ResultStore
}
