// Command tilekit is an interactive demo of the grid2 tiling container.
//
// Drag a separator to resize, right-click it to flip, shift+right-click to
// flip only the two neighbouring panels, ctrl+right-click to swap them.
// Keys: h/v split the panel under the pointer, x closes it, s saves the
// layout, r restores the initial layout, q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/config"
	"github.com/lixenwraith/tilekit/feedback"
	"github.com/lixenwraith/tilekit/grid2"
	"github.com/lixenwraith/tilekit/host"
	"github.com/lixenwraith/tilekit/widget"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.toml")
	layoutFile := flag.String("layout", "", "layout file, overrides [layout] file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilekit: %v\n", err)
		os.Exit(1)
	}
	if *layoutFile != "" {
		cfg.Layout.File = *layoutFile
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tilekit: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilekit: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "tilekit: %v\n", err)
		os.Exit(1)
	}
}

// openLog returns a file logger, or a discarding one when path is empty;
// the terminal owns stdout while the demo runs
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "tilekit ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func run(cfg config.Config, logger *log.Logger) error {
	opts, err := cfg.GridOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	var player *feedback.Player
	if cfg.Sound.Enabled {
		player = feedback.NewPlayer(cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			logger.Printf("sound disabled: %v", err)
			player = nil
		} else {
			defer player.Close()
			opts.Observer = player.Observer(nil)
		}
	}

	g := grid2.New(opts)
	if err := cfg.RestoreLayout(g); err != nil {
		return err
	}
	d := &demo{cfg: cfg, grid: g, logger: logger}
	d.bindPanels()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer func() { host.HandleCrash(screen, recover()) }()

	d.loop = host.NewLoop(screen, widget.NewApp(g))
	d.loop.Logger = logger
	d.loop.OnKey = d.key

	err = d.loop.Run(context.Background())
	logger.Printf("exit with layout %s", g)
	return err
}
