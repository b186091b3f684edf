package simulator

import (
	"bytes"
	"context"
	"testing"

	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCountsEveryHand(t *testing.T) {
	for jokers := 0; jokers <= deck.MaxJokers; jokers++ {
		tally, err := Run(context.Background(), Config{Hands: 1001, Workers: 4, Seed: 42, Jokers: jokers})
		require.NoError(t, err)
		assert.Equal(t, 1001, tally.Hands)
		assert.Zero(t, tally.Count(evaluator.NoCategory))
		assert.NoError(t, tally.Validate())
		if jokers == 0 {
			assert.Zero(t, tally.Jokers)
			assert.Zero(t, tally.Count(evaluator.FiveOfAKind))
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{Hands: 5000, Workers: 3, Seed: 7, Jokers: 1, Strategy: KeepGroups}

	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 8
	c, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Counts, c.Counts)
}

func TestRunMoreWorkersThanHands(t *testing.T) {
	tally, err := Run(context.Background(), Config{Hands: 3, Workers: 16, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Hands)
}

func TestRunStandFrequencies(t *testing.T) {
	tally, err := Run(context.Background(), Config{Hands: 50000, Workers: 4, Seed: 2024})
	require.NoError(t, err)

	assert.InDelta(t, 0.501, tally.Frequency(evaluator.HighCards), 0.02)
	assert.InDelta(t, 0.423, tally.Frequency(evaluator.OnePair), 0.02)
	assert.InDelta(t, 0.048, tally.Frequency(evaluator.TwoPair), 0.01)
	assert.Zero(t, tally.Exchanged)
}

func TestRunKeepGroupsImprovesHands(t *testing.T) {
	stand, err := Run(context.Background(), Config{Hands: 20000, Workers: 2, Seed: 5})
	require.NoError(t, err)
	keep, err := Run(context.Background(), Config{Hands: 20000, Workers: 2, Seed: 5, Strategy: KeepGroups})
	require.NoError(t, err)

	assert.Less(t, keep.Frequency(evaluator.HighCards), stand.Frequency(evaluator.HighCards))
	assert.Greater(t, keep.MeanExchanged(), 0.0)
	assert.LessOrEqual(t, keep.MeanExchanged(), float64(deck.HandSize))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Hands: 100000, Workers: 2, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no hands", cfg: Config{Hands: 0}},
		{name: "too many jokers", cfg: Config{Hands: 10, Jokers: 3}},
		{name: "negative jokers", cfg: Config{Hands: 10, Jokers: -1}},
		{name: "unknown strategy", cfg: Config{Hands: 10, Strategy: "bluff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("keep-groups")
	require.NoError(t, err)
	assert.Equal(t, KeepGroups, s)

	s, err = ParseStrategy("stand")
	require.NoError(t, err)
	assert.Equal(t, Stand, s)

	_, err = ParseStrategy("Stand")
	assert.Error(t, err)
}

func TestDiscardUnpaired(t *testing.T) {
	tests := []struct {
		name  string
		cards [5]string
		want  []int
	}{
		{name: "high cards", cards: [5]string{"H2", "S5", "D9", "CK", "HJ"}, want: []int{0, 1, 2, 3, 4}},
		{name: "one pair", cards: [5]string{"H2", "S2", "D9", "CK", "HJ"}, want: []int{2, 3, 4}},
		{name: "two pair", cards: [5]string{"H2", "S2", "D9", "C9", "HJ"}, want: []int{4}},
		{name: "trips", cards: [5]string{"H2", "S2", "D2", "C9", "HJ"}, want: []int{3, 4}},
		{name: "joker pair", cards: [5]string{"  ", "H2", "S5", "D9", "CK"}, want: []int{1, 2, 3, 4}},
		{name: "straight", cards: [5]string{"H2", "S3", "D4", "C5", "H6"}},
		{name: "flush", cards: [5]string{"H2", "H5", "H9", "HK", "HJ"}},
		{name: "full house", cards: [5]string{"H2", "S2", "D2", "C9", "H9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := deck.MustParseHand(tt.cards[0], tt.cards[1], tt.cards[2], tt.cards[3], tt.cards[4])
			assert.Equal(t, tt.want, DiscardUnpaired(h))
		})
	}
}

func TestPrintSummary(t *testing.T) {
	cfg := Config{Hands: 200, Workers: 1, Seed: 3, Jokers: 2, Strategy: KeepGroups}
	tally, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, tally, cfg)
	out := buf.String()

	assert.Contains(t, out, "200 HANDS, 2 JOKER(S), STRATEGY KEEP-GROUPS")
	assert.Contains(t, out, "Five of a Kind")
	assert.Contains(t, out, "High Cards")
	assert.Contains(t, out, "Cards exchanged")
	assert.Contains(t, out, "Jokers held")
	assert.NotContains(t, out, "No Category")
}
