package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/tmsim/internal/machine"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/numeral"
	"github.com/aretw0/tmsim/pkg/tape"
)

// Engine is the core simulation runner.
// It builds the initial tape of an operation, drives the matching machine to
// its halt state and reports the result through hooks and the returned Result.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	trace  bool
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTrace makes the engine collect every step into Result.Steps.
func WithTrace(enabled bool) EngineOption {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Simulate runs op on x and y.
func (e *Engine) Simulate(ctx context.Context, op domain.Operation, x, y uint32) (*domain.Result, *tape.Tape, error) {
	t, err := numeral.LayoutFor(op, x, y)
	if err != nil {
		return nil, nil, err
	}
	return e.run(ctx, op, x, y, "", t)
}

// RunTape runs op on a caller supplied tape. The tape must follow the field
// layout of op (see numeral.CheckLayout); it is consumed by the run.
func (e *Engine) RunTape(ctx context.Context, op domain.Operation, t *tape.Tape) (*domain.Result, *tape.Tape, error) {
	if _, err := machine.New(op, nil); err != nil {
		return nil, nil, err
	}
	if err := numeral.CheckLayout(t, op.Fields()); err != nil {
		return nil, nil, fmt.Errorf("%s tape %q: %w", op, t.String(), err)
	}
	fields := numeral.Fields(t)
	x, y := numeral.Decode(fields[0]), numeral.Decode(fields[1])
	return e.run(ctx, op, x, y, t.String(), t)
}

func (e *Engine) run(ctx context.Context, op domain.Operation, x, y uint32, input string, t *tape.Tape) (*domain.Result, *tape.Tape, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	logger := e.logger.With("operation", string(op), "x", x, "y", y)

	if e.hooks.OnStart != nil {
		e.hooks.OnStart(ctx, &domain.SimulationEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStart,
			Operation: op,
			X:         x,
			Y:         y,
		})
	}

	var steps []domain.Step
	var obs machine.Observer
	if e.trace || e.hooks.OnStep != nil {
		obs = func(s domain.Step) {
			if e.trace {
				steps = append(steps, s)
			}
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(ctx, &s)
			}
		}
	}

	m, err := machine.New(op, obs)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("simulation started", "tape", t.String())
	started := time.Now()
	boundary := m.Run(t, machine.ModeHalt)

	res := &domain.Result{
		Operation: op,
		X:         x,
		Y:         y,
		Value:     numeral.Read(t, boundary),
		Input:     input,
		Tape:      t.String(),
		Boundary:  boundary,
		StepCount: m.Steps(),
		Steps:     steps,
	}
	logger.Debug("simulation halted",
		"value", res.Value,
		"steps", res.StepCount,
		"cells", t.Len(),
		"elapsed", time.Since(started),
	)

	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.SimulationEvent{
			Timestamp: time.Now(),
			Type:      domain.EventHalt,
			Operation: op,
			X:         x,
			Y:         y,
			Result:    res,
		})
	}
	return res, t, nil
}
