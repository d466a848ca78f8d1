package core

import (
	"errors"
	"sort"
)

// ErrOutOfRange is returned by engines when a toggle targets a cell outside
// the grid.
var ErrOutOfRange = errors.New("cell out of range")

// Size describes the dimensions of an automaton grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (row, col) addresses a cell inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Engine is the automaton state-transition engine driven by the viewer.
//
// The slice returned by Cells is owned by the engine and is only valid until
// the next call to Step or Toggle; engines are free to swap or reuse their
// buffers on every generation.
type Engine interface {
	Name() string
	Size() Size
	Step()
	Toggle(row, col int) error
	Cells() []uint8
}

// Resetter is implemented by engines that can reseed their board.
type Resetter interface {
	Reset(seed int64)
}

// Randomizer is implemented by engines that can replace their board with a
// seeded random one, whatever pattern they were built with.
type Randomizer interface {
	Randomize(seed int64)
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
