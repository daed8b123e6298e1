package tmsim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tmsim/internal/machine"
	"github.com/aretw0/tmsim/internal/presentation/trace"
	"github.com/aretw0/tmsim/internal/runtime"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/numeral"
	"github.com/aretw0/tmsim/pkg/ports"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Engine is the high-level entry point for the tmsim library.
// It wraps the internal runtime, renders traces and persists records when a
// store is configured.
type Engine struct {
	plain  *runtime.Engine
	traced *runtime.Engine
	store  ports.ResultStore
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	trace  bool
	limit  domain.Limit
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore persists every record produced by Run and RunTape.
func WithStore(store ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLimit rejects runs larger than l with domain.ErrLimitExceeded.
func WithLimit(l domain.Limit) Option {
	return func(e *Engine) {
		e.limit = l
	}
}

// WithTrace makes every run return its steps and rendered trace, whatever the
// per-call flag says.
func WithTrace(enabled bool) Option {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	base := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	eng.plain = runtime.NewEngine(base...)
	eng.traced = runtime.NewEngine(append(base, runtime.WithTrace(true))...)
	return eng
}

var _ ports.Simulator = (*Engine)(nil)

// Limited returns a copy of e that shares its runtime, store and hooks but
// enforces l.
func (e *Engine) Limited(l domain.Limit) *Engine {
	c := *e
	c.limit = l
	return &c
}

// Run simulates op on x and y.
// When withTrace is true the record carries the steps and the rendered trace.
// With a store configured the trace is always rendered so it can be saved.
func (e *Engine) Run(ctx context.Context, op domain.Operation, x, y uint32, withTrace bool) (*domain.Record, error) {
	withTrace = withTrace || e.trace
	if err := e.limit.Check(op, identity(op), x, y); err != nil {
		return nil, err
	}
	res, _, err := e.runtime(withTrace).Simulate(ctx, op, x, y)
	if err != nil {
		return nil, err
	}
	return e.record(ctx, res, withTrace)
}

// RunTape simulates op on a tape given in its textual form, e.g. "B11B0B".
func (e *Engine) RunTape(ctx context.Context, op domain.Operation, raw string, withTrace bool) (*domain.Record, error) {
	withTrace = withTrace || e.trace
	t, err := tape.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedTape, err)
	}
	if err := e.checkTape(op, t); err != nil {
		return nil, err
	}
	res, _, err := e.runtime(withTrace).RunTape(ctx, op, t)
	if err != nil {
		return nil, err
	}
	return e.record(ctx, res, withTrace)
}

// checkTape applies the limit to a caller supplied tape. Layout errors are
// left to the runtime.
func (e *Engine) checkTape(op domain.Operation, t *tape.Tape) error {
	if err := e.limit.CheckCells(t.Len()); err != nil {
		return err
	}
	if numeral.CheckLayout(t, op.Fields()) != nil {
		return nil
	}
	fields := numeral.Fields(t)
	var acc uint32
	if len(fields) > 2 {
		acc = numeral.Decode(fields[2])
	}
	return e.limit.Check(op, acc, numeral.Decode(fields[0]), numeral.Decode(fields[1]))
}

// identity is the accumulator a fresh tape starts from.
func identity(op domain.Operation) uint32 {
	if op == domain.OpExponent {
		return 1
	}
	return 0
}

func (e *Engine) runtime(withTrace bool) *runtime.Engine {
	if withTrace || e.store != nil {
		return e.traced
	}
	return e.plain
}

func (e *Engine) record(ctx context.Context, res *domain.Result, withSteps bool) (*domain.Record, error) {
	rec := &domain.Record{
		ID:     res.ID(),
		Result: *res,
	}
	if res.Steps != nil {
		rec.Trace = trace.String(res)
	}

	if e.store != nil {
		stored := *rec
		stored.Result.Steps = nil
		if err := e.store.Save(ctx, &stored); err != nil {
			return nil, fmt.Errorf("failed to save record %s: %w", rec.ID, err)
		}
		e.logger.Debug("record saved", "id", rec.ID)
	}

	if !withSteps {
		rec.Result.Steps = nil
		rec.Trace = ""
	}
	return rec, nil
}

// States returns the static state table of op's machine.
func (e *Engine) States(op domain.Operation) ([]domain.StateSpec, error) {
	return machine.StatesFor(op)
}

// Store returns the configured result store, or nil.
func (e *Engine) Store() ports.ResultStore {
	return e.store
}

func simulate(op domain.Operation, a, b uint32) (*tape.Tape, int) {
	res, t, err := runtime.NewEngine().Simulate(context.Background(), op, a, b)
	if err != nil {
		// Every built-in operation has a machine.
		panic(err)
	}
	return t, res.Boundary
}

// SimulateAdd adds a and b on a fresh tape. It returns the final tape and
// boundary, the index of the Blank preceding the sum: the first digit is at
// boundary+1. The halt trim leaves boundary at 0.
func SimulateAdd(a, b uint32) (t *tape.Tape, boundary int) {
	return simulate(domain.OpAdd, a, b)
}

// SimulateMultiply multiplies a and b on a fresh tape. boundary is the index
// of the Blank preceding the product, as for SimulateAdd.
func SimulateMultiply(a, b uint32) (t *tape.Tape, boundary int) {
	return simulate(domain.OpMultiply, a, b)
}

// SimulateExponent raises a to the power of b on a fresh tape. boundary is
// the index of the Blank preceding the power, as for SimulateAdd.
func SimulateExponent(a, b uint32) (t *tape.Tape, boundary int) {
	return simulate(domain.OpExponent, a, b)
}
