package app

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "cellview/internal/sims/elementary"
	_ "cellview/internal/sims/life"
)

func TestParseDefaults(t *testing.T) {
	cmd, cfg, err := Parse([]string{"snapshot"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd != CommandSnapshot {
		t.Fatalf("expected %q, got %q", CommandSnapshot, cmd)
	}
	want := NewConfig()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cmd, cfg, err := Parse([]string{"term", "--engine", "elementary", "--width", "80", "--fps", "12", "--rule", "30"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd != CommandTerm {
		t.Fatalf("expected %q, got %q", CommandTerm, cmd)
	}
	if cfg.Engine != "elementary" || cfg.Width != 80 || cfg.FPS != 12 || cfg.Rule != 30 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Height != 64 {
		t.Fatalf("expected default height 64, got %d", cfg.Height)
	}
}

func TestParseNoCommand(t *testing.T) {
	if _, _, err := Parse(nil); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := [][]string{
		{"snapshot", "--engine", "nope"},
		{"snapshot", "--width", "0"},
		{"snapshot", "--fps", "0"},
		{"snapshot", "--cell-size", "0"},
		{"snapshot", "--alive-color", "black"},
		{"snapshot", "--generations=-1"},
		{"snapshot", "--engine", "elementary", "--rule", "300"},
		{"snapshot", "--rule=-1"},
	}
	for _, args := range cases {
		if _, _, err := Parse(args); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
}

func TestParseRejectsRuleOutOfByte(t *testing.T) {
	_, _, err := Parse([]string{"snapshot", "--engine", "elementary", "--rule", "300"})
	if err == nil || !strings.Contains(err.Error(), "rule 300") {
		t.Fatalf("expected a rule range error, got %v", err)
	}
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellview.yaml")
	body := "engine: life\nwidth: 10\nheight: 8\nfps: 5\ncell_size: 3\nalive_color: \"#FF0000\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, cfg, err := Parse([]string{"window", "--config", path, "--fps", "30"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 8 || cfg.CellSize != 3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.FPS != 30 {
		t.Fatalf("expected flag to override file fps, got %d", cfg.FPS)
	}
	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if p.Alive != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("unexpected alive color %v", p.Alive)
	}
	if cfg.DeadColor != "#FFFFFF" {
		t.Fatalf("expected default dead color to survive, got %q", cfg.DeadColor)
	}
}

func TestWriteYAMLLoadsBack(t *testing.T) {
	cfg := NewConfig()
	cfg.Engine = "elementary"
	cfg.CellSize = 7
	cfg.AliveColor = "#00FF00"

	path := filepath.Join(t.TempDir(), "dump.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := cfg.WriteYAML(f); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	got := NewConfig()
	if err := got.LoadFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestNewEngineUsesGrid(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 7, 5
	e, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if got := e.Size(); got.W != 7 || got.H != 5 {
		t.Fatalf("expected 7x5, got %dx%d", got.W, got.H)
	}
}
