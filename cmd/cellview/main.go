package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"cellview/internal/app"
	_ "cellview/internal/sims/briansbrain"
	_ "cellview/internal/sims/elementary"
	_ "cellview/internal/sims/life"
)

func main() {
	cmd, cfg, err := app.Parse(os.Args[1:])
	if errors.Is(err, app.ErrNoCommand) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run `cellview --help` for usage.")
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("cellview: %v", err)
	}

	if cfg.PrintConfig {
		if err := cfg.WriteYAML(os.Stdout); err != nil {
			log.Fatalf("cellview: %v", err)
		}
		return
	}

	switch cmd {
	case app.CommandWindow:
		err = app.RunWindow(cfg)
	case app.CommandTerm:
		err = app.RunTerminal(cfg)
	case app.CommandSnapshot:
		err = app.RunSnapshot(cfg)
		if err == nil {
			log.Printf("wrote %s after %d generations", cfg.Output, cfg.Generations)
		}
	}
	if err != nil {
		log.Fatalf("cellview %s: %v", cmd, err)
	}
}
