// Package viewer ties an automaton engine to a drawing surface, a frame
// scheduler and the user's play/pause, rate and click controls.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"cellview/internal/anim"
	"cellview/internal/core"
	"cellview/internal/render"
)

// DefaultFPS is the frame-rate limit used when none is configured.
const DefaultFPS = 60

// Labels shown on the play/pause control.
const (
	LabelPlay  = "play"
	LabelPause = "pause"
)

var (
	// ErrNoEngine is returned when New is called without an engine.
	ErrNoEngine = errors.New("viewer: no automaton engine")
	// ErrNoFrames is returned when New is called without a frame source.
	ErrNoFrames = errors.New("viewer: no frame source")
	// ErrNoSurface is returned when no surface can be obtained.
	ErrNoSurface = errors.New("viewer: no drawing surface")
	// ErrBadGrid is returned for engines reporting a non-positive size.
	ErrBadGrid = errors.New("viewer: grid dimensions must be positive")
)

// SurfaceFunc creates a drawing surface of exactly w*h pixels.
type SurfaceFunc func(w, h int) (render.Surface, error)

// Status is a snapshot of the viewer for status lines.
type Status struct {
	Engine     string
	Size       core.Size
	Generation uint64
	Skipped    uint64
	Alive      int
	FPS        int
	Playing    bool
}

type options struct {
	geometry render.Geometry
	palette  render.Palette
	fps      int
	logger   *log.Logger
}

// Option customizes a Viewer.
type Option func(*options)

// WithGeometry sets the cell size.
func WithGeometry(g render.Geometry) Option { return func(o *options) { o.geometry = g } }

// WithPalette sets the grid, dead and alive colors.
func WithPalette(p render.Palette) Option { return func(o *options) { o.palette = p } }

// WithFPS sets the initial frame-rate limit.
func WithFPS(fps int) Option { return func(o *options) { o.fps = fps } }

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// Viewer owns the render loop for one engine and one surface. All methods
// must be called from the goroutine that delivers frames.
type Viewer struct {
	engine   core.Engine
	size     core.Size
	renderer *render.Renderer
	mapper   render.Mapper
	surface  render.Surface
	sched    *anim.Scheduler
	logger   *log.Logger

	generation uint64
	alive      int
}

// New sizes a surface for the engine's grid, renders the first frame and
// returns a paused viewer.
func New(engine core.Engine, frames anim.FrameRequester, newSurface SurfaceFunc, opts ...Option) (*Viewer, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	if frames == nil {
		return nil, ErrNoFrames
	}
	if newSurface == nil {
		return nil, ErrNoSurface
	}

	o := options{
		geometry: render.DefaultGeometry(),
		palette:  render.DefaultPalette(),
		fps:      DefaultFPS,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.geometry.CellSize <= 0 {
		return nil, fmt.Errorf("viewer: cell size %d must be positive", o.geometry.CellSize)
	}
	if o.fps < 1 {
		o.fps = 1
	}

	size := engine.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGrid, size.W, size.H)
	}

	w, h := o.geometry.SurfaceSize(size)
	surface, err := newSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	if b := surface.Bounds(); b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrNoSurface, b.Dx(), b.Dy(), w, h)
	}

	v := &Viewer{
		engine:   engine,
		size:     size,
		renderer: &render.Renderer{Geometry: o.geometry, Palette: o.palette},
		mapper:   render.Mapper{Geometry: o.geometry, Grid: size},
		surface:  surface,
		logger:   o.logger,
	}
	v.sched = anim.NewScheduler(frames, o.fps, v.advance)
	if err := v.Render(); err != nil {
		return nil, err
	}
	return v, nil
}

// Surface returns the surface the viewer draws on.
func (v *Viewer) Surface() render.Surface { return v.surface }

// Size returns the grid dimensions.
func (v *Viewer) Size() core.Size { return v.size }

// SurfaceSize returns the intrinsic pixel size of the surface.
func (v *Viewer) SurfaceSize() image.Point { return v.surface.Bounds().Size() }

// Render draws the engine's current generation.
func (v *Viewer) Render() error {
	view, err := core.ViewOf(v.engine)
	if err != nil {
		v.logger.Printf("render %s: %v", v.engine.Name(), err)
		return err
	}
	v.renderer.Render(v.surface, v.size, view)
	v.alive = view.Alive()
	return nil
}

// IsPlaying reports whether the animation is running.
func (v *Viewer) IsPlaying() bool { return v.sched.IsPlaying() }

// PlayLabel is the text for the play/pause control.
func (v *Viewer) PlayLabel() string {
	if v.IsPlaying() {
		return LabelPause
	}
	return LabelPlay
}

// Play starts the animation.
func (v *Viewer) Play() { v.sched.Play() }

// Pause stops the animation.
func (v *Viewer) Pause() { v.sched.Pause() }

// TogglePlay switches between playing and paused.
func (v *Viewer) TogglePlay() { v.sched.Toggle() }

// FPS returns the frame-rate limit.
func (v *Viewer) FPS() int { return v.sched.FPSLimit() }

// SetFPS sets the frame-rate limit, clamped to at least 1.
func (v *Viewer) SetFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	v.sched.SetFPSLimit(fps)
}

// AdjustFPS changes the frame-rate limit by delta.
func (v *Viewer) AdjustFPS(delta int) { v.SetFPS(v.FPS() + delta) }

// Click toggles the cell under p, where displayed is the on-screen
// rectangle of the surface, and redraws immediately regardless of the
// play state.
func (v *Viewer) Click(p render.Pointer, displayed render.Rect) (row, col int) {
	row, col = v.mapper.Map(p, displayed, v.SurfaceSize())
	if err := v.engine.Toggle(row, col); err != nil {
		v.logger.Printf("toggle (%d,%d): %v", row, col, err)
	}
	_ = v.Render()
	return row, col
}

// Step advances a single generation outside the scheduler.
func (v *Viewer) Step() { v.advance() }

// Reset reseeds the engine when it supports it and redraws. It reports
// whether the engine was reset.
func (v *Viewer) Reset(seed int64) bool {
	r, ok := v.engine.(core.Resetter)
	if !ok {
		return false
	}
	r.Reset(seed)
	v.generation = 0
	_ = v.Render()
	return true
}

// Randomize replaces the board with a seeded random one and redraws.
// Engines without a random mode fall back to Reset. It reports whether the
// board changed.
func (v *Viewer) Randomize(seed int64) bool {
	r, ok := v.engine.(core.Randomizer)
	if !ok {
		return v.Reset(seed)
	}
	r.Randomize(seed)
	v.generation = 0
	_ = v.Render()
	return true
}

// Status returns counters for display.
func (v *Viewer) Status() Status {
	return Status{
		Engine:     v.engine.Name(),
		Size:       v.size,
		Generation: v.generation,
		Skipped:    v.sched.Skipped(),
		Alive:      v.alive,
		FPS:        v.FPS(),
		Playing:    v.IsPlaying(),
	}
}

// Close cancels any pending frame request. It is safe to call twice.
func (v *Viewer) Close() { v.sched.Pause() }

func (v *Viewer) advance() {
	v.engine.Step()
	v.generation++
	_ = v.Render()
}
