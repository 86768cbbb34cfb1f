package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/collage/internal/config"
	"github.com/aretw0/collage/internal/presentation/graph"
	"github.com/aretw0/collage/internal/presentation/tui"
	"github.com/aretw0/collage/pkg/adapters/memory"
)

// Inspect renders the layout at path. Raw output skips terminal styling.
func Inspect(path string, raw bool, out io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	md := tui.LayoutMarkdown(cfg)
	if raw {
		_, err := io.WriteString(out, md)
		return err
	}
	rendered, err := tui.NewRenderer()(md)
	if err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// InspectGraph builds the container described by the layout and prints its
// node tree as a Mermaid flowchart.
func InspectGraph(opts Options, out io.Writer) error {
	app, err := NewApp(opts, false)
	if err != nil {
		return err
	}
	defer app.Close()
	_, err = io.WriteString(out, liveGraph(app))
	return err
}

// liveGraph must run on the host loop once the loop is started.
func liveGraph(app *App) string {
	if app.Container == nil {
		root, _ := app.Tree.CurrentScene().(*memory.Node)
		return graph.GenerateMermaid(root, nil)
	}
	overlay := &graph.GraphOverlay{}
	for _, st := range app.Container.Status() {
		mf, ok := app.Container.Miniframe(st.ID)
		if !ok {
			continue
		}
		p := mf.Node().Path()
		overlay.Frames = append(overlay.Frames, p)
		if st.Enabled {
			overlay.Enabled = append(overlay.Enabled, p)
		}
		if st.Focused {
			overlay.Focused = p
		}
	}
	return graph.GenerateMermaid(app.Container.Root(), overlay)
}
