package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/collage/pkg/adapters/memory"
)

// GraphOverlay contains live host state to visualize on the graph.
// Entries are node paths as returned by memory.Node.Path.
type GraphOverlay struct {
	Frames  []string
	Enabled []string
	Focused string
}

// GenerateMermaid produces a Mermaid flowchart of the node tree under root.
// It applies semantic styling:
// - Scene root: ((Circle))
// - Frame (from overlay): [[Subroutine]]
// - Slot: [/Parallelogram/]
// - Default: [Rectangle]
// Enabled and focused frames are highlighted when an overlay is given.
func GenerateMermaid(root *memory.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if !root.Valid() {
		return sb.String()
	}

	frames := make(map[string]bool)
	if overlay != nil {
		for _, p := range overlay.Frames {
			frames[p] = true
		}
	}

	root.Walk(func(n *memory.Node) bool {
		safeID := sanitizeMermaidID(n.Path())

		opener, closer := "[", "]"
		switch {
		case frames[n.Path()]:
			opener, closer = "[[", "]]"
		case n.ScenePath() != "":
			opener, closer = "((", "))"
		case n.Props().Slot:
			opener, closer = "[/", "/]"
		}

		label := n.Name()
		if p := n.Props(); p.Item != "" {
			label = fmt.Sprintf("%s <br/> %s x%d", label, p.Item, p.Count)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, strings.ReplaceAll(label, "\"", "'"), closer)

		if parent := n.Parent(); parent != nil && n != root {
			arrow := "-->"
			if n.ScenePath() != "" {
				arrow = "-.->"
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(parent.Path()), arrow, safeID)
		}
		return true
	})

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds.
		sb.WriteString("    classDef enabled fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, p := range overlay.Enabled {
			safeID := sanitizeMermaidID(p)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s enabled;\n", safeID)
			}
		}
		if overlay.Focused != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Focused))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.TrimPrefix(id, "/")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
