package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/aretw0/tmsim/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(ctx context.Context, e *domain.SimulationEvent) {
			logger.Debug("Simulation Start", "operation", e.Operation, "x", e.X, "y", e.Y)
		},
		OnHalt: func(ctx context.Context, e *domain.SimulationEvent) {
			logger.Debug("Simulation Halt", "operation", e.Operation, "value", e.Result.Value, "steps", e.Result.StepCount)
		},
	}
}

// LegacyArgs rewrites the historical flag style invocation ("tmsim -add 3 5")
// into the subcommand form ("tmsim add 3 5"). Other arguments are returned as is.
func LegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case "-add", "-mult", "-exp":
		out := make([]string, len(args))
		copy(out, args)
		out[0] = strings.TrimPrefix(args[0], "-")
		return out
	}
	return args
}
