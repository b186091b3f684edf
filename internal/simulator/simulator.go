// Package simulator deals large numbers of hands in parallel and tallies the
// categories they land in.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/evaluator"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/statistics"
)

// Strategy decides what a simulated player does with the dealt hand
type Strategy string

const (
	// Stand classifies the hand as dealt
	Stand Strategy = "stand"
	// KeepGroups swaps every unpaired non-joker card once when the hand is
	// weaker than a straight
	KeepGroups Strategy = "keep-groups"
)

// Strategies lists every supported strategy
var Strategies = []Strategy{Stand, KeepGroups}

// ParseStrategy looks a strategy up by name
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", name)
}

// Config holds configuration for a simulation run
type Config struct {
	Hands    int
	Workers  int // Defaults to runtime.NumCPU()
	Seed     int64
	Jokers   int
	Strategy Strategy // Defaults to Stand
	Logger   *log.Logger
}

func (c *Config) normalize() error {
	if c.Hands < 1 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}
	if c.Jokers < 0 || c.Jokers > deck.MaxJokers {
		return &deck.JokerCountError{Count: c.Jokers}
	}
	if c.Strategy == "" {
		c.Strategy = Stand
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers > c.Hands {
		c.Workers = c.Hands
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return nil
}

// Run deals cfg.Hands hands split across cfg.Workers goroutines. Each worker
// owns a deck seeded from cfg.Seed, so a given seed and worker count always
// produce the same tally.
func Run(ctx context.Context, cfg Config) (*statistics.Tally, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	perWorker := cfg.Hands / cfg.Workers
	remainder := cfg.Hands % cfg.Workers
	seeds := randutil.New(cfg.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Tally, cfg.Workers)

	for w := range cfg.Workers {
		hands := perWorker
		if w < remainder {
			hands++
		}
		workerSeed := seeds.Int64()

		g.Go(func() error {
			tally, err := runWorker(ctx, cfg, hands, workerSeed)
			if err != nil {
				return err
			}
			cfg.Logger.Debug("Worker finished", "worker", w, "hands", hands)

			select {
			case results <- tally:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Tally{}
	for tally := range results {
		total.Merge(tally)
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

// cancelCheckInterval is how many hands a worker deals between context checks
const cancelCheckInterval = 256

func runWorker(ctx context.Context, cfg Config, hands int, seed int64) (*statistics.Tally, error) {
	rng := randutil.New(seed)
	tally := &statistics.Tally{}

	// A keep-groups hand may draw up to five replacements after the deal
	need := deck.HandSize
	if cfg.Strategy == KeepGroups {
		need *= 2
	}

	var d *deck.Deck
	for i := range hands {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if d == nil || d.Remaining() < need {
			var err error
			if d, err = deck.New(cfg.Jokers, deck.WithPicker(rng)); err != nil {
				return nil, err
			}
		}

		result, err := playHand(d, cfg.Strategy)
		if err != nil {
			return nil, err
		}
		tally.Add(result)
	}
	return tally, nil
}

func playHand(d *deck.Deck, strategy Strategy) (statistics.HandResult, error) {
	hand, err := d.Deal()
	if err != nil {
		return statistics.HandResult{}, err
	}

	exchanged := 0
	if strategy == KeepGroups {
		if positions := DiscardUnpaired(hand); len(positions) > 0 {
			if err := d.Exchange(&hand, positions...); err != nil {
				return statistics.HandResult{}, err
			}
			exchanged = len(positions)
		}
	}

	return statistics.HandResult{
		Category:  evaluator.Classify(hand),
		Jokers:    hand.Jokers(),
		Exchanged: exchanged,
	}, nil
}

// DiscardUnpaired returns the positions of non-joker cards whose rank appears
// only once, or nil when the hand is already a straight or better.
func DiscardUnpaired(h deck.Hand) []int {
	if !evaluator.Straight.Stronger(evaluator.Classify(h)) {
		return nil
	}

	var counts [deck.Ace + 1]int
	for _, c := range h {
		if !c.IsJoker() && c.Rank >= deck.Two && c.Rank <= deck.Ace {
			counts[c.Rank]++
		}
	}

	var positions []int
	for i, c := range h {
		if !c.IsJoker() && counts[c.Rank] == 1 {
			positions = append(positions, i)
		}
	}
	return positions
}

// PrintSummary writes a frequency table for a finished run
func PrintSummary(w io.Writer, tally *statistics.Tally, cfg Config) {
	fmt.Fprintf(w, "\n=== %d HANDS, %d JOKER(S), STRATEGY %s ===\n",
		tally.Hands, cfg.Jokers, strings.ToUpper(string(cfg.Strategy)))

	for _, row := range tally.Rows() {
		low, high := tally.ConfidenceInterval95(row.Category)
		fmt.Fprintf(w, "%-16s %10d  %8.4f%%  [%.4f%%, %.4f%%]\n",
			row.Category, row.Count, row.Frequency*100, low*100, high*100)
	}

	if cfg.Strategy == KeepGroups {
		fmt.Fprintf(w, "\nCards exchanged: %.2f per hand\n", tally.MeanExchanged())
	}
	if cfg.Jokers > 0 {
		fmt.Fprintf(w, "Jokers held: %.3f per hand\n", float64(tally.Jokers)/float64(max(tally.Hands, 1)))
	}
}
