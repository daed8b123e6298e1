package tmsim

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/tmsim/pkg/domain"
)

// Runner executes a batch of simulations read line by line from Input.
// Each line holds an operation and two operands, e.g. "mult 4 6" or "-exp 2 5".
// Blank lines and lines starting with '#' are skipped.
type Runner struct {
	Input  io.Reader
	Output io.Writer
	// Trace writes the full trace of every simulation to Output.
	Trace bool
}

// NewRunner creates a Runner over the given IO.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

// Run processes every line of Input. A failing line is reported on Output and
// does not stop the batch; the returned error joins every line failure.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	var errs []error
	scanner := bufio.NewScanner(r.Input)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if err := r.runLine(ctx, engine, text); err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
			fmt.Fprintf(r.Output, "error: %v\n", err)
			errs = append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return errors.Join(errs...)
}

func (r *Runner) runLine(ctx context.Context, engine *Engine, text string) error {
	op, x, y, err := ParseCommand(strings.Fields(text))
	if err != nil {
		return err
	}

	rec, err := engine.Run(ctx, op, x, y, r.Trace)
	if err != nil {
		return err
	}

	if r.Trace {
		fmt.Fprintln(r.Output, rec.Trace)
	}
	fmt.Fprintf(r.Output, "%d %s %d = %d\n", x, op.Symbol(), y, rec.Result.Value)
	return nil
}

// ParseCommand parses an operation followed by two operands, as given on the
// command line or in a batch file.
func ParseCommand(args []string) (domain.Operation, uint32, uint32, error) {
	if len(args) != 3 {
		return "", 0, 0, fmt.Errorf("expected <operation> <x> <y>, got %d fields", len(args))
	}
	op, err := domain.ParseOperation(args[0])
	if err != nil {
		return "", 0, 0, err
	}
	x, err := ParseOperand(args[1])
	if err != nil {
		return "", 0, 0, err
	}
	y, err := ParseOperand(args[2])
	if err != nil {
		return "", 0, 0, err
	}
	return op, x, y, nil
}

// ParseOperand parses a non-negative decimal operand.
func ParseOperand(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: must be an integer in [0, %d]", s, uint32(1<<32-1))
	}
	return uint32(n), nil
}
