package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
)

// GlobalTarget names the container itself in console commands.
const GlobalTarget = "global"

var errQuit = errors.New("quit")

const consoleHelp = `Commands:
  frames                     list registered frames
  graph                      print the scene tree as a Mermaid flowchart
  click <frame>              click a frame (focuses it when disabled)
  release                    give input back to the container
  scene <target>             print the current scene of target's context
  reload <target>            reload the scene of target's context
  change <target> <path>     change the scene of target's context
  mode <target> <mode>       set the input mode of target's context
  slot <target> <node-path>  report a slot interaction from target's scene
  kill <frame>               destroy a frame (swept on the next tick)
  help                       show this help
  quit                       exit
A target is a frame id, or "global" for the container.`

// Console interprets text commands against a running App. Commands execute on
// the host loop.
type Console struct {
	app    *App
	out    io.Writer
	cancel events.CancelFunc
}

// NewConsole creates a console writing to out. Every interaction is echoed
// with the context it was tagged with.
func NewConsole(app *App, out io.Writer) *Console {
	c := &Console{app: app, out: out}
	c.cancel = app.Coord.SubscribeInteractions(func(e domain.InteractionEvent) {
		fmt.Fprintf(out, "[%s] %s clicked %s\n", e.Context, e.Origin.Name(), describeSlot(e.Slot))
	})
	return c
}

func describeSlot(n domain.Node) string {
	mn, ok := n.(*memory.Node)
	if !ok {
		return n.Name()
	}
	p := mn.Props()
	switch {
	case p.Item != "":
		return fmt.Sprintf("%s (%s x%d)", mn.Name(), p.Item, p.Count)
	case p.Label != "":
		return fmt.Sprintf("%s (%s)", mn.Name(), p.Label)
	}
	return mn.Name()
}

// Close stops echoing interactions.
func (c *Console) Close() {
	c.cancel()
}

// Serve reads commands from in until EOF, "quit" or ctx cancellation.
func (c *Console) Serve(ctx context.Context, in io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(NewInterruptibleReader(in, ctx.Done()))
	for {
		if prompt {
			fmt.Fprint(c.out, "> ")
		}
		if !scanner.Scan() {
			return handleExecutionError(scanner.Err())
		}
		err := c.Execute(ctx, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case isInterrupted(err):
			return nil
		case err != nil:
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

// Execute runs one command line on the host loop.
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	}

	var err error
	if doErr := c.app.Loop.Do(ctx, func() { err = c.dispatch(cmd, args) }); doErr != nil {
		return doErr
	}
	return err
}

func (c *Console) dispatch(cmd string, args []string) error {
	switch cmd {
	case "frames":
		return c.frames()
	case "graph":
		fmt.Fprint(c.out, liveGraph(c.app))
		return nil
	case "click":
		return c.withFrame(args, 1, func(mf *memory.Miniframe) error {
			if !mf.Click() {
				return fmt.Errorf("frame %s is already enabled", mf.ID())
			}
			return nil
		})
	case "kill":
		return c.withFrame(args, 1, func(mf *memory.Miniframe) error {
			mf.Destroy()
			fmt.Fprintf(c.out, "frame %s destroyed\n", mf.ID())
			return nil
		})
	case "release":
		if c.app.Container == nil {
			return errors.New("no container in standalone mode")
		}
		c.app.Container.Release()
		return nil
	case "scene":
		return c.withTarget(args, 1, func(node domain.Node) error {
			root := c.app.Coord.CurrentScene(node)
			if root == nil {
				return errors.New("no current scene")
			}
			fmt.Fprintf(c.out, "%s: %s\n", c.app.Coord.ResolveContext(node), describeScene(root))
			return nil
		})
	case "reload":
		return c.withTarget(args, 1, c.app.Coord.ReloadScene)
	case "change":
		return c.withTarget(args, 2, func(node domain.Node) error {
			return c.app.Coord.ChangeSceneToFile(node, args[1])
		})
	case "mode":
		return c.withTarget(args, 2, func(node domain.Node) error {
			mode, err := domain.ParseInputMode(args[1])
			if err != nil {
				return err
			}
			c.app.Coord.SetInputMode(node, mode)
			return nil
		})
	case "slot":
		return c.withTarget(args, 2, func(node domain.Node) error {
			root, ok := c.app.Coord.CurrentScene(node).(*memory.Node)
			if !ok || root == nil {
				return errors.New("no current scene")
			}
			slot := root.Find(args[1])
			if slot == nil {
				return fmt.Errorf("no node %q in %s", args[1], root.Name())
			}
			if !slot.Props().Slot {
				return fmt.Errorf("%s is not a slot", slot.Path())
			}
			c.app.Coord.ReportInteraction(domain.InputEvent{
				Kind: "mouse_button", Button: memory.SelectButton, Pressed: true,
			}, slot, slot)
			return nil
		})
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

func describeScene(root domain.Node) string {
	if mn, ok := root.(*memory.Node); ok && mn.ScenePath() != "" {
		return fmt.Sprintf("%s (%s)", mn.Name(), mn.ScenePath())
	}
	return root.Name()
}

func (c *Console) frames() error {
	if c.app.Container == nil {
		fmt.Fprintln(c.out, "standalone: no frames")
		return nil
	}
	status := c.app.Container.Status()
	if len(status) == 0 {
		fmt.Fprintln(c.out, "no frames")
	}
	for _, st := range status {
		mark := " "
		if st.Focused {
			mark = "*"
		}
		fmt.Fprintf(c.out, "%s %-12s enabled=%-5t input=%-15s %s\n", mark, st.ID, st.Enabled, st.InputMode, st.Scene)
	}
	return nil
}

func (c *Console) withFrame(args []string, n int, fn func(*memory.Miniframe) error) error {
	if len(args) < n {
		return errors.New("missing frame id")
	}
	if c.app.Container == nil {
		return errors.New("no container in standalone mode")
	}
	mf, ok := c.app.Container.Miniframe(domain.FrameID(args[0]))
	if !ok || !mf.Valid() {
		return fmt.Errorf("frame %s: %w", args[0], domain.ErrFrameGone)
	}
	return fn(mf)
}

// withTarget resolves the node a command acts from. In standalone mode, or once
// the container scene has been replaced, every target means the current scene;
// in a container it is the chrome for "global" or the current scene of the
// named frame.
func (c *Console) withTarget(args []string, n int, fn func(domain.Node) error) error {
	if len(args) < n {
		return fmt.Errorf("expected %d argument(s)", n)
	}
	if c.app.Container == nil || !c.app.Container.Sync() {
		node := c.app.Tree.CurrentScene()
		if node == nil {
			return errors.New("no scene loaded")
		}
		return fn(node)
	}
	if args[0] == GlobalTarget {
		return fn(c.app.Container.Chrome())
	}
	return c.withFrame(args, n, func(mf *memory.Miniframe) error {
		node := mf.CurrentScene()
		if node == nil {
			return fmt.Errorf("frame %s has no scene", mf.ID())
		}
		return fn(node)
	})
}
