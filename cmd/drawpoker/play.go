package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/drawpoker/cmd/drawpoker/shared"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/tui"
)

type PlayCmd struct {
	Jokers     *int   `short:"j" help:"Jokers in the deck, 0-2 (overrides config)"`
	Exchanges  *int   `short:"x" help:"Exchange rounds per game, 0-20 (overrides config)"`
	Theme      string `help:"Color theme: default, dark or light (overrides config)"`
	Narrow     bool   `help:"Draw card faces with ordinary characters instead of full-width ones"`
	HistoryDir string `help:"Save a transcript of every game into this directory (overrides config)"`
	Seed       *int64 `help:"Seed for reproducible deals"`
}

// resolveConfig loads the config file and applies flag overrides
func (c *PlayCmd) resolveConfig(globals *Globals) (*config.Config, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if c.Jokers != nil {
		cfg.Game.Jokers = *c.Jokers
	}
	if c.Exchanges != nil {
		cfg.Game.Exchanges = *c.Exchanges
	}
	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
	}
	if c.Narrow {
		cfg.UI.WideCards = false
	}
	if c.HistoryDir != "" {
		cfg.UI.HistoryDir = c.HistoryDir
	}
	if globals.LogLevel != "" {
		cfg.UI.LogLevel = globals.LogLevel
	}
	if globals.LogFile != "" {
		cfg.UI.LogFile = globals.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// pickerFactory returns a fresh random source per game. With a seed, the
// n-th game of every run is dealt identically.
func (c *PlayCmd) pickerFactory() func() deck.Picker {
	if c.Seed == nil {
		return nil
	}
	seed := *c.Seed
	return func() deck.Picker {
		p := randutil.New(seed)
		seed++
		return p
	}
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := c.resolveConfig(globals)
	if err != nil {
		return err
	}

	logger, closer, err := shared.SetupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if globals.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Info("Starting drawpoker",
		"version", version,
		"config", globals.Config,
		"jokers", cfg.Game.Jokers,
		"exchanges", cfg.Game.Exchanges)

	var history game.HistoryWriter
	if cfg.UI.HistoryDir != "" {
		history = game.NewFileHistoryWriter(cfg.UI.HistoryDir)
	}

	err = tui.Run(tui.Config{
		Settings:      cfg.Game,
		Logger:        logger,
		NewPicker:     c.pickerFactory(),
		HistoryWriter: history,
		WideCards:     cfg.UI.WideCards,
		Theme:         cfg.UI.Theme,
	})
	if err != nil {
		logger.Error("TUI exited with error", "error", err)
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
