package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/collage/internal/config"
	"github.com/aretw0/collage/internal/presentation/tui"
	"github.com/aretw0/collage/pkg/adapters/memory"
)

// RunOptions configures the interactive commands.
type RunOptions struct {
	Options
	Watch  bool
	Quiet  bool
	Prompt bool
}

// Run starts the container described by the layout and reads console
// commands from in until EOF or ctx is cancelled.
func Run(ctx context.Context, opts RunOptions, in io.Reader, out io.Writer) error {
	app, err := NewApp(opts.Options, false)
	if err != nil {
		return err
	}
	defer app.Close()

	if !opts.Quiet {
		tui.PrintBanner(out)
		printSystemMessage(out, "%d frame(s) in '%s'. Type 'help' for commands.",
			app.Coord.Miniframes().Len(), app.Config.Container.Name)
	}
	return serveConsole(ctx, app, opts, in, out)
}

// Play runs a single scene standalone, without a container.
func Play(ctx context.Context, opts RunOptions, scene string, in io.Reader, out io.Writer) error {
	app, err := NewApp(opts.Options, true)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Tree.ChangeSceneToFile(scene); err != nil {
		return err
	}
	if !opts.Quiet {
		printSystemMessage(out, "Playing '%s' standalone.", scene)
	}
	return serveConsole(ctx, app, opts, in, out)
}

func serveConsole(ctx context.Context, app *App, opts RunOptions, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- app.Loop.Run(ctx) }()

	if opts.Watch && opts.ConfigPath != "" {
		if err := watchLayout(ctx, app, opts.ConfigPath, out); err != nil {
			return err
		}
	}

	console := NewConsole(app, out)
	defer console.Close()
	err := console.Serve(ctx, in, opts.Prompt)

	cancel()
	<-loopErr
	return err
}

// watchLayout reloads the scene library whenever the layout file changes and
// moves every frame onto the fresh descriptor of its current scene.
func watchLayout(ctx context.Context, app *App, path string, out io.Writer) error {
	changes, err := config.Watch(ctx, path, 100*time.Millisecond, app.Logger)
	if err != nil {
		return err
	}
	go func() {
		for range changes {
			err := app.Loop.Do(ctx, func() {
				n, err := reloadLibrary(app, path)
				if err != nil {
					app.Logger.Error("Layout reload failed", "err", err)
					printSystemMessage(out, "Layout reload failed: %v", err)
					return
				}
				printSystemMessage(out, "Layout changed, %d scene(s) reloaded.", n)
			})
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// reloadLibrary must run on the host loop.
func reloadLibrary(app *App, path string) (int, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return 0, err
	}
	lib, err := cfg.Library()
	if err != nil {
		return 0, err
	}
	app.Tree.Library().Replace(lib)

	var roots []*memory.Node
	if app.Container == nil {
		if root, ok := app.Tree.CurrentScene().(*memory.Node); ok && root != nil {
			roots = append(roots, root)
		}
	} else {
		for _, f := range app.Coord.Miniframes().All() {
			if root, ok := f.CurrentScene().(*memory.Node); ok && root != nil {
				roots = append(roots, root)
			}
		}
	}

	reloaded := 0
	for _, root := range roots {
		if root.ScenePath() == "" {
			continue
		}
		if err := app.Coord.ChangeSceneToFile(root, root.ScenePath()); err != nil {
			return reloaded, fmt.Errorf("%s: %w", root.ScenePath(), err)
		}
		reloaded++
	}
	return reloaded, nil
}
