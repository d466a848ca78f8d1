package briansbrain

import (
	"strconv"

	"cellview/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Brain implements Brian's Brain. Its dying state is a third byte value,
// which the viewer draws the same as a firing cell.
type Brain struct {
	grid *core.ByteGrid
	nxt  []uint8
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	g := core.NewByteGrid(w, h)
	return &Brain{grid: g, nxt: make([]uint8, len(g.Cells()))}
}

// Name identifies the engine.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.grid.Size() }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.grid.Cells() }

// Toggle fires a quiet cell and silences a firing or dying one.
func (b *Brain) Toggle(row, col int) error {
	return b.grid.Flip(row, col)
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	core.NewRNG(seed).Scatter(b.grid.Cells(), 8, stateOn)
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.grid.W, b.grid.H
	cur := b.grid.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch cur[idx] {
			case stateOn:
				b.nxt[idx] = stateDying
			case stateDying:
				b.nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						ny, nx := b.grid.Wrap(y+dy, x+dx)
						if cur[ny*w+nx] == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = stateOn
				} else {
					b.nxt[idx] = stateDead
				}
			}
		}
	}
	b.nxt = b.grid.Swap(b.nxt)
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Engine {
		w, h := 64, 64
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		b := New(w, h)
		seed, _ := strconv.ParseInt(cfg["seed"], 10, 64)
		b.Reset(seed)
		return b
	})
}
