package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tmsim/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromSteps builds an overlay from a recorded trace: every state that
// was entered is marked visited and the last one is current.
func OverlayFromSteps(steps []domain.Step) *GraphOverlay {
	if len(steps) == 0 {
		return nil
	}
	o := &GraphOverlay{}
	for _, s := range steps {
		o.VisitedStates = append(o.VisitedStates, s.State)
	}
	o.CurrentState = steps[len(steps)-1].State
	return o
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a state table.
// It applies semantic styling:
// - Start: ((Circle))
// - Subroutine: [[Subroutine]]
// - Halt: (((Double circle)))
// - Default: [Rectangle]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(states []domain.StateSpec, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range states {
		safeID := sanitizeMermaidID(state.Name)

		opener, closer := "[", "]"
		switch state.Kind {
		case domain.StateStart:
			opener, closer = "((", "))"
		case domain.StateSubroutine:
			opener, closer = "[[", "]]"
		case domain.StateHalt:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state.Name, closer))

		for _, t := range state.Transitions {
			safeTo := sanitizeMermaidID(t.To)
			arrow := "-->"
			if t.Condition != "" {
				safeCondition := strings.ReplaceAll(t.Condition, "\"", "'")
				arrow = fmt.Sprintf("-- \"%s\" -->", safeCondition)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(name)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, "*", "_sub")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
