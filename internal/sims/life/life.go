package life

import (
	"strconv"

	"cellview/internal/core"
)

// Seed patterns understood by Reset.
const (
	PatternDemo   = "demo"
	PatternRandom = "random"
	PatternBlank  = "blank"
)

// Config holds parameters for a Life board.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Pattern string
}

// DefaultConfig returns the default 64x64 demo board.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 42, Pattern: PatternDemo}
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	switch cfg["pattern"] {
	case PatternDemo, PatternRandom, PatternBlank:
		c.Pattern = cfg["pattern"]
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	grid    *core.ByteGrid
	nxt     []uint8
	pattern string
}

// New returns a blank Life board with the provided dimensions.
func New(w, h int) *Life {
	g := core.NewByteGrid(w, h)
	return &Life{grid: g, nxt: make([]uint8, len(g.Cells())), pattern: PatternBlank}
}

// NewWithConfig builds a board and seeds it according to cfg.
func NewWithConfig(cfg Config) *Life {
	l := New(cfg.Width, cfg.Height)
	l.pattern = cfg.Pattern
	l.Reset(cfg.Seed)
	return l
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current generation. The slice is swapped out on Step.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Toggle flips the cell at (row, col).
func (l *Life) Toggle(row, col int) error { return l.grid.Flip(row, col) }

// Reset reseeds the board using the configured pattern.
func (l *Life) Reset(seed int64) {
	cells := l.grid.Cells()
	switch l.pattern {
	case PatternRandom:
		core.NewRNG(seed).Scatter(cells, 2, 1)
	case PatternDemo:
		for i := range cells {
			cells[i] = 0
			if i%2 == 0 || i%7 == 0 {
				cells[i] = 1
			}
		}
	default:
		l.grid.Clear()
	}
}

// Randomize switches the board to the random pattern and reseeds it, so
// later Resets keep producing random boards.
func (l *Life) Randomize(seed int64) {
	l.pattern = PatternRandom
	l.Reset(seed)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.grid.W, l.grid.H
	cur := l.grid.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny, nx := l.grid.Wrap(y+dy, x+dx)
					if cur[ny*w+nx] != 0 {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := cur[idx] != 0
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.nxt = l.grid.Swap(l.nxt)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		return NewWithConfig(FromMap(cfg))
	})
}
