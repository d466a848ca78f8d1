package elementary

import (
	"strconv"

	"cellview/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code. Row 0 holds the
// newest generation and older generations scroll downwards.
type Elementary struct {
	grid *core.ByteGrid
	rule uint8
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	g := core.NewByteGrid(w, h)
	return &Elementary{grid: g, rule: rule, tmp: make([]uint8, g.W)}
}

// Name returns the engine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the grid dimensions.
func (e *Elementary) Size() core.Size { return e.grid.Size() }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Toggle flips a cell. Only row 0 feeds the next generation; edits further
// down only change the history.
func (e *Elementary) Toggle(row, col int) error { return e.grid.Flip(row, col) }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.grid.Clear()
	e.grid.Cells()[e.grid.W/2] = 1
}

// Randomize clears the grid and seeds the top row at random.
func (e *Elementary) Randomize(seed int64) {
	e.grid.Clear()
	core.NewRNG(seed).Scatter(e.grid.Cells()[:e.grid.W], 2, 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.grid.W, e.grid.H
	cur := e.grid.Cells()
	copy(e.tmp, cur[:w])
	copy(cur[w:], cur[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w] & 1
		center := e.tmp[x] & 1
		right := e.tmp[(x+1)%w] & 1
		idx := (left << 2) | (center << 1) | right
		cur[x] = (e.rule >> idx) & 1
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		e := New(c.Width, c.Height, c.Rule)
		e.Reset(0)
		return e
	})
}
