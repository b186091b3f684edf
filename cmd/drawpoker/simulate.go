package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/drawpoker/cmd/drawpoker/shared"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/simulator"
)

type SimulateCmd struct {
	Hands    int    `short:"n" default:"100000" help:"Number of hands to deal"`
	Workers  int    `short:"w" default:"0" help:"Parallel workers (0 = one per CPU)"`
	Seed     *int64 `help:"Seed for reproducible runs (random when omitted)"`
	Jokers   int    `short:"j" default:"0" help:"Jokers in each deck, 0-2"`
	Strategy string `short:"s" enum:"stand,keep-groups" default:"stand" help:"What the player does with the deal: stand or keep-groups"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	level := globals.LogLevel
	if level == "" {
		level = "warn"
	}
	logger, err := shared.SetupLogger(os.Stderr, level)
	if err != nil {
		return err
	}

	strategy, err := simulator.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}

	seed := randutil.EntropySeed()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	cfg := simulator.Config{
		Hands:    c.Hands,
		Workers:  c.Workers,
		Seed:     seed,
		Jokers:   c.Jokers,
		Strategy: strategy,
		Logger:   logger,
	}

	logger.Info("Starting simulation", "hands", cfg.Hands, "jokers", cfg.Jokers, "strategy", cfg.Strategy, "seed", seed)
	start := time.Now()

	tally, err := simulator.Run(ctx, cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	logger.Info("Simulation finished", "elapsed", elapsed)

	simulator.PrintSummary(os.Stdout, tally, cfg)
	fmt.Printf("\nSeed: %d, %.0f hands/sec\n", seed, float64(tally.Hands)/elapsed.Seconds())
	return nil
}
