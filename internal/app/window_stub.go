//go:build !ebiten

package app

import "errors"

// ErrWindowUnavailable is returned by RunWindow in builds without the
// ebiten tag.
var ErrWindowUnavailable = errors.New("window mode requires building with the 'ebiten' tag; try `go run -tags ebiten ./cmd/cellview window` or use `term`")

// RunWindow always fails in the headless build.
func RunWindow(*Config) error {
	return ErrWindowUnavailable
}
