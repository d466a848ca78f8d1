//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"cellview/internal/anim"
	"cellview/internal/render"
	"cellview/internal/ui"
	"cellview/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// Window adapts a Viewer to the ebiten.Game interface. ebiten's Update tick
// is the display refresh that drives the frame queue.
type Window struct {
	viewer  *viewer.Viewer
	frames  *anim.FrameQueue
	canvas  *render.Canvas
	texture *ebiten.Image
	panel   *ui.Panel
	painter *ui.Painter
	layout  screenLayout

	start time.Time
	seed  int64
}

// NewWindow builds the viewer for cfg and the ebiten game around it.
func NewWindow(cfg *Config) (*Window, error) {
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ViewerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, viewer.WithLogger(log.Default()))

	frames := anim.NewFrameQueue()
	var canvas *render.Canvas
	v, err := viewer.New(engine, frames, func(w, h int) (render.Surface, error) {
		canvas = render.NewCanvas(w, h)
		return canvas, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("build viewer: %w", err)
	}

	size := canvas.Bounds().Size()
	panel := ui.NewPanel(size.X)
	return &Window{
		viewer:  v,
		frames:  frames,
		canvas:  canvas,
		texture: ebiten.NewImage(size.X, size.Y),
		panel:   panel,
		painter: ui.NewPainter(panel),
		start:   time.Now(),
		seed:    cfg.Seed,
	}, nil
}

// RunWindow opens the window and blocks until it is closed.
func RunWindow(cfg *Config) error {
	w, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	defer w.viewer.Close()

	ww, wh := windowSize(w.viewer.SurfaceSize(), cfg.Scale)
	ebiten.SetWindowTitle("cellview: " + w.viewer.Status().Engine)
	ebiten.SetWindowSize(ww, wh)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and delivers one frame to the scheduler.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.viewer.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.viewer.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.viewer.Reset(w.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		w.viewer.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		w.viewer.AdjustFPS(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		w.viewer.AdjustFPS(-1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.click(ebiten.CursorPosition())
	}

	w.frames.Dispatch(time.Since(w.start))
	return nil
}

func (w *Window) click(x, y int) {
	p := render.Pointer{X: float64(x), Y: float64(y)}
	if displayed := render.RectOf(w.layout.surface); displayed.Contains(p) {
		w.viewer.Click(p, displayed)
		return
	}
	if y < w.layout.panelTop {
		return
	}
	switch w.panel.Hit(x, y-w.layout.panelTop) {
	case ui.ActionTogglePlay:
		w.viewer.TogglePlay()
	case ui.ActionSlower:
		w.viewer.AdjustFPS(-1)
	case ui.ActionFaster:
		w.viewer.AdjustFPS(1)
	}
}

// Draw uploads the canvas and paints the controls.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)

	w.texture.WritePixels(w.canvas.Pix())
	src := w.canvas.Bounds().Size()
	dst := w.layout.surface
	if !dst.Empty() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(dst.Dx())/float64(src.X), float64(dst.Dy())/float64(src.Y))
		op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
		screen.DrawImage(w.texture, op)
	}

	st := w.viewer.Status()
	w.painter.Draw(screen, w.layout.panelTop, ui.PanelState{
		PlayLabel: w.viewer.PlayLabel(),
		FPS:       st.FPS,
		Info:      fmt.Sprintf("gen %d  alive %d  %.0f tps", st.Generation, st.Alive, ebiten.ActualTPS()),
	})
}

// Layout keeps the logical screen equal to the window so the mapper sees
// the real display scale.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.layout = fitSurface(w.viewer.SurfaceSize(), outsideWidth, outsideHeight)
	if w.panel.Width() != outsideWidth {
		w.panel.Resize(outsideWidth)
	}
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Window)(nil)
