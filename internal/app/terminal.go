package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cellview/internal/anim"
	"cellview/internal/render"
	"cellview/internal/viewer"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"
)

const (
	gridView   = "grid"
	statusView = "status"
	helpView   = "help"
)

// scrollStep moves the grid view by four cells per arrow press.
const scrollStep = 4 * (termCellSize + 1)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// lastLine keeps the most recent log line for the status view.
type lastLine struct{ s string }

func (l *lastLine) Write(p []byte) (int, error) {
	l.s = strings.TrimRight(string(p), "\n")
	return len(p), nil
}

// Terminal drives a Viewer inside a gocui screen. All viewer calls happen
// on the gocui main loop goroutine.
type Terminal struct {
	viewer  *viewer.Viewer
	frames  *anim.FrameQueue
	surface *TextSurface
	log     *lastLine
	seed    int64
	keys    []keyBinding

	// originX, originY is the surface character shown at the top-left of
	// the grid view; viewW, viewH is the view's interior size.
	originX, originY int
	viewW, viewH     int
}

// NewTerminal builds the viewer for cfg on a text surface.
func NewTerminal(cfg *Config) (*Terminal, error) {
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ViewerOptions()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	t := &Terminal{frames: anim.NewFrameQueue(), log: &lastLine{}, seed: cfg.Seed}
	opts = append(opts,
		viewer.WithGeometry(render.Geometry{CellSize: termCellSize}),
		viewer.WithLogger(log.New(t.log, "", 0)),
	)
	t.viewer, err = viewer.New(engine, t.frames, func(w, h int) (render.Surface, error) {
		t.surface = NewTextSurface(w, h, palette.Alive)
		return t.surface, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("build viewer: %w", err)
	}

	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'p', "P", "Play/pause", t.cmdTogglePlay, ""},
		{gocui.KeySpace, "SPACE", "", t.cmdTogglePlay, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'+', "+", "Faster", t.cmdFaster, ""},
		{'=', "=", "", t.cmdFaster, ""},
		{'-', "-", "Slower", t.cmdSlower, ""},
		{'r', "R", "Reset", t.cmdReset, ""},
		{'w', "W", "Reseed randomly", t.cmdReseed, ""},
		{gocui.KeyArrowLeft, "ARROWS", "Scroll", t.cmdScroll(-scrollStep, 0), ""},
		{gocui.KeyArrowRight, "RIGHT", "", t.cmdScroll(scrollStep, 0), ""},
		{gocui.KeyArrowUp, "UP", "", t.cmdScroll(0, -scrollStep), ""},
		{gocui.KeyArrowDown, "DOWN", "", t.cmdScroll(0, scrollStep), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, gridView},
	}
	return t, nil
}

// RunTerminal runs the terminal viewer until the user quits.
func RunTerminal(cfg *Config) error {
	t, err := NewTerminal(cfg)
	if err != nil {
		return err
	}
	defer t.viewer.Close()

	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer gui.Close()
	gui.Mouse = true
	gui.SetManagerFunc(t.layout)
	if err := t.bind(gui); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return anim.Pump(ctx, anim.DefaultPumpInterval, func(ts time.Duration) {
			gui.Update(func(*gocui.Gui) error {
				t.frames.Dispatch(ts)
				return nil
			})
		})
	})
	g.Go(func() error {
		defer cancel()
		if err := gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
			return err
		}
		return nil
	})
	return g.Wait()
}

func (t *Terminal) bind(gui *gocui.Gui) error {
	for _, kb := range t.keys {
		h := kb.handler
		if err := gui.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := t.viewer.SurfaceSize()

	x1 := min(size.X+1, maxX-1)
	y1 := min(size.Y+1, maxY-4)
	if v, err := g.SetView(gridView, 0, 0, max(x1, 1), max(y1, 1)); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = t.viewer.Status().Engine
		v.Frame = true
	}
	if v, err := g.View(gridView); err == nil {
		t.resize(v.Size())
		if err := v.SetOrigin(t.originX, t.originY); err != nil {
			return err
		}
		v.Clear()
		fmt.Fprint(v, t.surface.String())
	}

	if v, err := g.SetView(statusView, 0, maxY-4, max(maxX-1, 1), maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		fmt.Fprintln(v, t.statusLine())
	}

	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, t.helpLine())
	}
	return nil
}

func (t *Terminal) statusLine() string {
	st := t.viewer.Status()
	label := aurora.Colorize(t.viewer.PlayLabel(), aurora.GreenFg).String()
	if st.Playing {
		label = aurora.Colorize(t.viewer.PlayLabel(), aurora.RedFg).String()
	}
	line := fmt.Sprintf(" [%s] %s: %d fps  %s: %d  %s: %d",
		label,
		aurora.Colorize("limit", aurora.CyanFg), st.FPS,
		aurora.Colorize("gen", aurora.CyanFg), st.Generation,
		aurora.Colorize("alive", aurora.CyanFg), st.Alive)
	if t.log.s != "" {
		line += "  " + t.log.s
	}
	return line
}

func (t *Terminal) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYS: ")
	first := true
	for _, k := range t.keys {
		if k.descr == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

// resize records the grid view's interior size and pulls the origin back
// inside the surface.
func (t *Terminal) resize(w, h int) {
	t.viewW, t.viewH = max(w, 0), max(h, 0)
	t.scroll(0, 0)
}

// scroll moves the origin by (dx, dy) characters, keeping the view over
// the surface.
func (t *Terminal) scroll(dx, dy int) {
	size := t.viewer.SurfaceSize()
	t.originX = min(max(t.originX+dx, 0), max(size.X-t.viewW, 0))
	t.originY = min(max(t.originY+dy, 0), max(size.Y-t.viewH, 0))
}

// clickView toggles the cell under (cx, cy) in grid view coordinates.
func (t *Terminal) clickView(cx, cy int) (row, col int) {
	return t.click(cx+t.originX, cy+t.originY)
}

// click toggles the cell under the character at (cx, cy) of the surface.
func (t *Terminal) click(cx, cy int) (row, col int) {
	full := render.RectOf(t.surface.Bounds())
	return t.viewer.Click(render.Pointer{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}, full)
}

func (t *Terminal) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (t *Terminal) cmdTogglePlay(_ *gocui.View) error {
	t.viewer.TogglePlay()
	return nil
}

func (t *Terminal) cmdStep(_ *gocui.View) error {
	t.viewer.Step()
	return nil
}

func (t *Terminal) cmdFaster(_ *gocui.View) error {
	t.viewer.AdjustFPS(1)
	return nil
}

func (t *Terminal) cmdSlower(_ *gocui.View) error {
	t.viewer.AdjustFPS(-1)
	return nil
}

func (t *Terminal) cmdReset(_ *gocui.View) error {
	t.viewer.Reset(t.seed)
	return nil
}

func (t *Terminal) cmdReseed(_ *gocui.View) error {
	t.viewer.Randomize(time.Now().UnixNano())
	return nil
}

func (t *Terminal) cmdScroll(dx, dy int) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.scroll(dx, dy)
		return nil
	}
}

func (t *Terminal) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.clickView(cx, cy)
	return nil
}
