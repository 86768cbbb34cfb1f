package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/collage/internal/config"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Rendering falls back to the raw markdown when no terminal renderer is available.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// LayoutMarkdown describes a layout as a markdown document: the frames of the
// container followed by the node tree of every scene.
func LayoutMarkdown(cfg *config.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Container.Name)
	fmt.Fprintf(&b, "Tick `%s`, admin on `%s`.\n\n", cfg.Tick, cfg.Admin.Addr)

	b.WriteString("## Frames\n\n")
	if len(cfg.Container.Frames) == 0 {
		b.WriteString("_No frames: scenes run standalone._\n\n")
	} else {
		b.WriteString("| # | Frame | Scene |\n|---|---|---|\n")
		for i, f := range cfg.Container.Frames {
			fmt.Fprintf(&b, "| %d | %s | `%s` |\n", i+1, f.ID, f.Scene)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Scenes\n\n")
	for _, s := range cfg.Scenes {
		fmt.Fprintf(&b, "### `%s`\n\n", s.Path)
		writeNode(&b, s.Root, 0)
		b.WriteString("\n")
	}
	return b.String()
}

func writeNode(b *strings.Builder, n config.NodeConfig, depth int) {
	fmt.Fprintf(b, "%s- **%s**", strings.Repeat("  ", depth), n.Name)
	if props, err := config.DecodeProps(n.Props); err == nil && props.Slot {
		b.WriteString(" (slot")
		if props.Item != "" {
			fmt.Fprintf(b, ": %s x%d", props.Item, props.Count)
		}
		if props.Label != "" {
			fmt.Fprintf(b, ", %q", props.Label)
		}
		b.WriteString(")")
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}
