package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/adapters"
	"github.com/aretw0/tmsim/internal/presentation/graph"
	"github.com/aretw0/tmsim/internal/presentation/trace"
	"github.com/aretw0/tmsim/internal/presentation/tui"
	"github.com/aretw0/tmsim/pkg/domain"
)

// SimulateOptions control what a single simulation prints.
type SimulateOptions struct {
	// PrintTrace writes the full trace to the output before the result.
	PrintTrace bool
	// Summary renders a markdown summary (styled on terminals).
	Summary bool
	// JSON prints the record as JSON instead of the text result.
	JSON bool
}

// RunSimulation runs one operation and reports it the way the classic tool
// does: the trace goes to the store and the result to out.
func RunSimulation(ctx context.Context, app *App, op domain.Operation, x, y uint32, opts SimulateOptions, out io.Writer) error {
	rec, err := app.Engine.Run(ctx, op, x, y, opts.PrintTrace || opts.Summary)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	if opts.PrintTrace {
		fmt.Fprintln(out, rec.Trace)
	}
	if opts.Summary {
		md := trace.Summary(&rec.Result)
		if tui.IsTerminal(out) {
			if rendered, err := tui.NewRenderer()(md); err == nil {
				md = rendered
			}
		}
		fmt.Fprintln(out, strings.TrimSpace(md))
	}

	fmt.Fprint(out, tui.ResultLine(out, traceFileName(app, rec.ID), rec.Result.Value))
	return nil
}

func traceFileName(app *App, id string) string {
	fs, ok := app.Store.(*adapters.FileStore)
	if !ok {
		return ""
	}
	return filepath.Clean(fs.TracePath(id))
}

// RunGraph prints the Mermaid diagram of op. When operands are given the
// machine is run first and the visited states are highlighted.
func RunGraph(ctx context.Context, app *App, op domain.Operation, operands []uint32, out io.Writer) error {
	states, err := app.Engine.States(op)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if len(operands) == 2 {
		rec, err := tmsim.New().Run(ctx, op, operands[0], operands[1], true)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromSteps(rec.Result.Steps)
	}

	fmt.Fprint(out, graph.GenerateMermaid(states, overlay))
	return nil
}

// RunBatch feeds every "op x y" line of in through the engine.
func RunBatch(ctx context.Context, app *App, in io.Reader, out io.Writer, withTrace bool) error {
	r := tmsim.NewRunner(in, out)
	r.Trace = withTrace
	return r.Run(ctx, app.Engine)
}
