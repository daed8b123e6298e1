package trace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/tmsim/pkg/domain"
)

// Summary renders res as a markdown document: the computation, the final tape
// and, when steps were collected, how often each state was entered.
func Summary(res *domain.Result) string {
	var b strings.Builder

	if res.Input != "" {
		fmt.Fprintf(&b, "# %s on `%s` = %d\n\n", res.Operation, res.Input, res.Value)
	} else {
		fmt.Fprintf(&b, "# %d %s %d = %d\n\n", res.X, res.Operation.Symbol(), res.Y, res.Value)
	}
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Operation | `%s` |\n", res.Operation)
	fmt.Fprintf(&b, "| Result | %d |\n", res.Value)
	fmt.Fprintf(&b, "| Steps | %d |\n", res.StepCount)
	fmt.Fprintf(&b, "| Tape | `%s` |\n", res.Tape)

	if len(res.Steps) == 0 {
		return b.String()
	}

	counts := make(map[string]int)
	var order []string
	for _, s := range res.Steps {
		if _, seen := counts[s.State]; !seen {
			order = append(order, s.State)
		}
		counts[s.State]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	b.WriteString("\n## States\n\n| State | Visits |\n|---|---|\n")
	for _, name := range order {
		fmt.Fprintf(&b, "| %s | %d |\n", name, counts[name])
	}
	return b.String()
}
