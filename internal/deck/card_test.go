package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	tests := []struct {
		name    string
		suit    Suit
		rank    Rank
		want    Card
		wantErr error
	}{
		{name: "two of hearts", suit: Hearts, rank: Two, want: Card{Hearts, Two}},
		{name: "eight of spades", suit: Spades, rank: Eight, want: Card{Spades, Eight}},
		{name: "king of clubs", suit: Clubs, rank: King, want: Card{Clubs, King}},
		{name: "ace of diamonds", suit: Diamonds, rank: Ace, want: Card{Diamonds, Ace}},
		{name: "joker", suit: Joker, rank: Wild, want: Card{Joker, Wild}},
		{name: "joker ignores rank", suit: Joker, rank: -8, want: Card{Joker, Wild}},
		{name: "unset suit", suit: NoSuit, rank: Five, wantErr: ErrInvalidSuit},
		{name: "unknown suit", suit: Suit(42), rank: Five, wantErr: ErrInvalidSuit},
		{name: "rank too low", suit: Hearts, rank: 1, wantErr: ErrInvalidRank},
		{name: "rank too high", suit: Diamonds, rank: 15, wantErr: ErrInvalidRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCard(tt.suit, tt.rank)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardShortForm(t *testing.T) {
	for _, s := range []string{"H2", "D6", "S9", "C10", "HJ", "CQ", "SK", "CA", "  "} {
		t.Run(s, func(t *testing.T) {
			card := MustParseCard(s)
			assert.Equal(t, s, card.ShortForm())
			assert.Equal(t, s, card.String())
		})
	}
}

func TestCardWide(t *testing.T) {
	tests := []struct {
		card     string
		wideSuit string
		wideRank string
	}{
		{"H3", "Ｈ", "３"},
		{"D3", "Ｄ", "３"},
		{"SK", "Ｓ", "Ｋ"},
		{"CA", "Ｃ", "Ａ"},
		{"S7", "Ｓ", "７"},
		{"C10", "Ｃ", "10"},
		{"HJ", "Ｈ", "Ｊ"},
		{"SQ", "Ｓ", "Ｑ"},
		{"  ", "　", "　"},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			card := MustParseCard(tt.card)
			assert.Equal(t, tt.wideSuit, card.WideSuit())
			assert.Equal(t, tt.wideRank, card.WideRank())
			assert.Equal(t, tt.wideSuit+tt.wideRank, card.Wide())
		})
	}
}

func TestCardEquality(t *testing.T) {
	assert.Equal(t, MustParseCard("HA"), Card{Suit: Hearts, Rank: Ace})
	assert.NotEqual(t, MustParseCard("HA"), MustParseCard("SA"))
	assert.NotEqual(t, MustParseCard("HA"), MustParseCard("HK"))
	assert.Equal(t, MustParseCard("  "), MustParseCard(" 8"), "all jokers are the same card")
}

func TestSuitHelpers(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Joker.IsRed())

	assert.Equal(t, "♥", Hearts.Symbol())
	assert.Equal(t, "♠", Spades.Symbol())
	assert.Equal(t, "?", NoSuit.Symbol())
	assert.False(t, NoSuit.Valid())
	assert.True(t, Joker.Valid())

	assert.True(t, NewJoker().IsJoker())
	assert.False(t, MustParseCard("H5").IsJoker())
}
