package statistics

import (
	"fmt"
	"math"

	"github.com/lox/drawpoker/internal/evaluator"
)

// HandResult is the outcome of one simulated hand
type HandResult struct {
	Category  evaluator.Category // Final category after any exchange
	Jokers    int                // Jokers in the final hand
	Exchanged int                // Cards swapped before classification
}

// Tally accumulates category counts over many hands
type Tally struct {
	Hands     int
	Counts    [evaluator.NoCategory + 1]int // Indexed by category, last slot for NoCategory
	Jokers    int                           // Total jokers seen in final hands
	Exchanged int                           // Total cards swapped
}

// Row is one line of a frequency table
type Row struct {
	Category  evaluator.Category
	Count     int
	Frequency float64
}

// Add incorporates a hand result
func (t *Tally) Add(result HandResult) {
	c := result.Category
	if !c.Valid() {
		c = evaluator.NoCategory
	}
	t.Hands++
	t.Counts[c]++
	t.Jokers += result.Jokers
	t.Exchanged += result.Exchanged
}

// Count returns how many hands landed in c
func (t *Tally) Count(c evaluator.Category) int {
	if c < 0 || int(c) >= len(t.Counts) {
		return 0
	}
	return t.Counts[c]
}

// Frequency returns the share of hands that landed in c
func (t *Tally) Frequency(c evaluator.Category) float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Count(c)) / float64(t.Hands)
}

// StdError returns the standard error of Frequency(c), treating each hand as
// an independent Bernoulli trial.
func (t *Tally) StdError(c evaluator.Category) float64 {
	if t.Hands == 0 {
		return 0
	}
	p := t.Frequency(c)
	return math.Sqrt(p * (1 - p) / float64(t.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for Frequency(c)
func (t *Tally) ConfidenceInterval95(c evaluator.Category) (float64, float64) {
	p := t.Frequency(c)
	margin := 1.96 * t.StdError(c)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanExchanged returns the average number of cards swapped per hand
func (t *Tally) MeanExchanged() float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Exchanged) / float64(t.Hands)
}

// Merge folds other into t
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	t.Hands += other.Hands
	for i, n := range other.Counts {
		t.Counts[i] += n
	}
	t.Jokers += other.Jokers
	t.Exchanged += other.Exchanged
}

// Rows returns one row per real category from strongest to weakest, followed
// by a NoCategory row only if any hand failed to classify.
func (t *Tally) Rows() []Row {
	rows := make([]Row, 0, len(t.Counts))
	for _, c := range evaluator.Categories() {
		rows = append(rows, Row{Category: c, Count: t.Count(c), Frequency: t.Frequency(c)})
	}
	if n := t.Count(evaluator.NoCategory); n > 0 {
		rows = append(rows, Row{Category: evaluator.NoCategory, Count: n, Frequency: t.Frequency(evaluator.NoCategory)})
	}
	return rows
}

// Validate checks that the counts add up
func (t *Tally) Validate() error {
	if t.Hands < 0 {
		return fmt.Errorf("invalid hands count: %d", t.Hands)
	}

	total := 0
	for i, n := range t.Counts {
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, evaluator.Category(i))
		}
		total += n
	}
	if total != t.Hands {
		return fmt.Errorf("category counts total (%d) does not match hands count (%d)", total, t.Hands)
	}
	return nil
}
