package app

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"cellview/internal/anim"
	"cellview/internal/render"
	"cellview/internal/viewer"
)

// Snapshot advances cfg.Generations generations headlessly and encodes the
// resulting surface, upscaled by cfg.Scale, as PNG.
func Snapshot(cfg *Config, out io.Writer) error {
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	opts, err := cfg.ViewerOptions()
	if err != nil {
		return err
	}

	var canvas *render.Canvas
	v, err := viewer.New(engine, anim.NewFrameQueue(), func(w, h int) (render.Surface, error) {
		canvas = render.NewCanvas(w, h)
		return canvas, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("build viewer: %w", err)
	}
	defer v.Close()

	for i := 0; i < cfg.Generations; i++ {
		v.Step()
	}
	if err := png.Encode(out, canvas.Scaled(cfg.Scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RunSnapshot writes the snapshot to cfg.Output.
func RunSnapshot(cfg *Config) (err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", cfg.Output, cerr)
		}
	}()
	return Snapshot(cfg, f)
}
