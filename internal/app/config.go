package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cellview/internal/core"
	"cellview/internal/render"
	"cellview/internal/viewer"

	"github.com/integrii/flaggy"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Subcommand names.
const (
	CommandWindow   = "window"
	CommandTerm     = "term"
	CommandSnapshot = "snapshot"
)

// ErrNoCommand is returned by Parse when no subcommand was given.
var ErrNoCommand = errors.New("no command given: use window, term or snapshot")

// Config represents the command-line and config-file parameters.
type Config struct {
	Engine  string `mapstructure:"engine" yaml:"engine"`
	Width   int    `mapstructure:"width" yaml:"width"`
	Height  int    `mapstructure:"height" yaml:"height"`
	Seed    int64  `mapstructure:"seed" yaml:"seed"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	Rule    int    `mapstructure:"rule" yaml:"rule"`

	FPS      int `mapstructure:"fps" yaml:"fps"`
	CellSize int `mapstructure:"cell_size" yaml:"cell_size"`
	Scale    int `mapstructure:"scale" yaml:"scale"`

	GridColor  string `mapstructure:"grid_color" yaml:"grid_color"`
	DeadColor  string `mapstructure:"dead_color" yaml:"dead_color"`
	AliveColor string `mapstructure:"alive_color" yaml:"alive_color"`

	Output      string `mapstructure:"output" yaml:"output"`
	Generations int    `mapstructure:"generations" yaml:"generations"`

	ConfigFile  string `mapstructure:"-" yaml:"-"`
	PrintConfig bool   `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:     "life",
		Width:      64,
		Height:     64,
		Seed:       42,
		Pattern:    "demo",
		Rule:       110,
		FPS:        viewer.DefaultFPS,
		CellSize:   render.DefaultCellSize,
		Scale:      2,
		GridColor:  "#CCCCCC",
		DeadColor:  "#FFFFFF",
		AliveColor: "#000000",
		Output:     "cellview.png",
	}
}

// Bind attaches the configuration to the provided subcommand.
func (c *Config) Bind(sc *flaggy.Subcommand) {
	sc.String(&c.ConfigFile, "c", "config", "YAML/TOML/JSON file with defaults; flags override it")
	sc.Bool(&c.PrintConfig, "", "print-config", "print the effective configuration as YAML and exit")
	sc.String(&c.Engine, "e", "engine", "automaton engine ["+strings.Join(core.EngineNames(), "|")+"]")
	sc.Int(&c.Width, "x", "width", "grid width in cells")
	sc.Int(&c.Height, "y", "height", "grid height in cells")
	sc.Int64(&c.Seed, "s", "seed", "seed for random patterns")
	sc.String(&c.Pattern, "p", "pattern", "life seed pattern [demo|random|blank]")
	sc.Int(&c.Rule, "", "rule", "Wolfram rule for the elementary engine")
	sc.Int(&c.FPS, "f", "fps", "frame-rate limit")
	sc.Int(&c.CellSize, "", "cell-size", "cell edge in pixels")
	sc.Int(&c.Scale, "", "scale", "window/snapshot scale multiplier")
	sc.String(&c.GridColor, "", "grid-color", "gridline color #RRGGBB")
	sc.String(&c.DeadColor, "", "dead-color", "dead cell color #RRGGBB")
	sc.String(&c.AliveColor, "", "alive-color", "alive cell color #RRGGBB")
}

// BindSnapshot attaches the snapshot-only flags.
func (c *Config) BindSnapshot(sc *flaggy.Subcommand) {
	sc.String(&c.Output, "o", "output", "PNG file to write")
	sc.Int(&c.Generations, "g", "generations", "generations to advance before the snapshot")
}

// LoadFile overlays values from a config file onto c. Keys missing from the
// file keep their current value.
func (c *Config) LoadFile(path string) error {
	vp := viper.New()
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := vp.Unmarshal(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// WriteYAML writes the file-backed settings in a form LoadFile accepts.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := core.Engines()[c.Engine]; !ok {
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d must have positive dimensions", c.Width, c.Height)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps %d must be at least 1", c.FPS)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size %d must be at least 1", c.CellSize)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale %d must be at least 1", c.Scale)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return fmt.Errorf("rule %d must be between 0 and 255", c.Rule)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations %d must not be negative", c.Generations)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	grid, err := render.ParseHexColor(c.GridColor)
	if err != nil {
		return render.Palette{}, fmt.Errorf("grid color: %w", err)
	}
	dead, err := render.ParseHexColor(c.DeadColor)
	if err != nil {
		return render.Palette{}, fmt.Errorf("dead color: %w", err)
	}
	alive, err := render.ParseHexColor(c.AliveColor)
	if err != nil {
		return render.Palette{}, fmt.Errorf("alive color: %w", err)
	}
	return render.Palette{Grid: grid, Dead: dead, Alive: alive}, nil
}

// Geometry returns the configured cell geometry.
func (c *Config) Geometry() render.Geometry {
	return render.Geometry{CellSize: c.CellSize}
}

// NewEngine builds the configured engine from the registry.
func (c *Config) NewEngine() (core.Engine, error) {
	factory, ok := core.Engines()[c.Engine]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q", c.Engine)
	}
	return factory(map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"pattern": c.Pattern,
		"rule":    strconv.Itoa(c.Rule),
	}), nil
}

// ViewerOptions translates the config into viewer options.
func (c *Config) ViewerOptions() ([]viewer.Option, error) {
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	return []viewer.Option{
		viewer.WithGeometry(c.Geometry()),
		viewer.WithPalette(palette),
		viewer.WithFPS(c.FPS),
	}, nil
}

// Parse parses args (without the program name) into a subcommand and a
// validated Config. When --config names a file, the file is loaded first
// and the flags are parsed again on top of it.
func Parse(args []string) (string, *Config, error) {
	cmd, cfg, err := parseOnce(args, NewConfig())
	if err != nil {
		return "", nil, err
	}
	if cfg.ConfigFile != "" {
		base := NewConfig()
		if err := base.LoadFile(cfg.ConfigFile); err != nil {
			return "", nil, err
		}
		if cmd, cfg, err = parseOnce(args, base); err != nil {
			return "", nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	return cmd, cfg, nil
}

func parseOnce(args []string, cfg *Config) (string, *Config, error) {
	p := flaggy.NewParser("cellview")
	p.Description = "Interactive cellular automaton viewer"
	p.ShowHelpOnUnexpected = false

	window := flaggy.NewSubcommand(CommandWindow)
	window.Description = "open a window (requires the ebiten build tag)"
	term := flaggy.NewSubcommand(CommandTerm)
	term.Description = "run in the terminal"
	snapshot := flaggy.NewSubcommand(CommandSnapshot)
	snapshot.Description = "render a PNG without opening a window"

	for _, sc := range []*flaggy.Subcommand{window, term, snapshot} {
		cfg.Bind(sc)
		p.AttachSubcommand(sc, 1)
	}
	cfg.BindSnapshot(snapshot)

	if err := p.ParseArgs(args); err != nil {
		return "", nil, err
	}
	switch {
	case window.Used:
		return CommandWindow, cfg, nil
	case term.Used:
		return CommandTerm, cfg, nil
	case snapshot.Used:
		return CommandSnapshot, cfg, nil
	}
	return "", nil, ErrNoCommand
}
