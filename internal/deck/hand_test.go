package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type handFixture struct {
	name       string
	cards      [5]string
	jokers     int
	lowest     Rank
	highest    Rank
	kinds      [5]int // CountOfRank(1) .. CountOfRank(5)
	ranks      []Rank // every rank HasRank should report
	sameSuit   bool
	sequential bool
	froms      []Rank // starting ranks in 2..10 that IsSequentialFrom accepts
}

var handFixtures = []handFixture{
	{name: "five of a kind 1", cards: [5]string{"D6", "  ", "C6", "S6", "H6"}, jokers: 1, lowest: 6, highest: 6, kinds: [5]int{0, 0, 0, 1, 0}, ranks: []Rank{6}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "five of a kind 2", cards: [5]string{"  ", "  ", "C8", "S8", "H8"}, jokers: 2, lowest: 8, highest: 8, kinds: [5]int{0, 0, 1, 0, 0}, ranks: []Rank{8}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "royal flush 1", cards: [5]string{"H10", "HA", "HQ", "HJ", "HK"}, jokers: 0, lowest: 10, highest: 14, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{10, 11, 12, 13, 14}, sameSuit: true, sequential: true, froms: []Rank{10}},
	{name: "royal flush 2", cards: [5]string{"CA", "CK", "CQ", "C10", "CJ"}, jokers: 0, lowest: 10, highest: 14, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{10, 11, 12, 13, 14}, sameSuit: true, sequential: true, froms: []Rank{10}},
	{name: "straight flush 1", cards: [5]string{"H6", "H5", "H7", "H4", "H3"}, jokers: 0, lowest: 3, highest: 7, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{3, 4, 5, 6, 7}, sameSuit: true, sequential: true, froms: []Rank{3}},
	{name: "straight flush 2", cards: [5]string{"DQ", "DJ", "D10", "D9", "DK"}, jokers: 0, lowest: 9, highest: 13, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{9, 10, 11, 12, 13}, sameSuit: true, sequential: true, froms: []Rank{9}},
	{name: "four of a kind 1", cards: [5]string{"DQ", "CQ", "D10", "DQ", "SQ"}, jokers: 0, lowest: 10, highest: 12, kinds: [5]int{1, 0, 0, 1, 0}, ranks: []Rank{10, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "four of a kind 2", cards: [5]string{"C8", "CQ", "D8", "H8", "S8"}, jokers: 0, lowest: 8, highest: 12, kinds: [5]int{1, 0, 0, 1, 0}, ranks: []Rank{8, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "full house 1", cards: [5]string{"C4", "HQ", "S4", "D4", "SQ"}, jokers: 0, lowest: 4, highest: 12, kinds: [5]int{0, 1, 1, 0, 0}, ranks: []Rank{4, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "full house 2", cards: [5]string{"CA", "HA", "S3", "DA", "H3"}, jokers: 0, lowest: 3, highest: 14, kinds: [5]int{0, 1, 1, 0, 0}, ranks: []Rank{3, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "flush 1", cards: [5]string{"HA", "H5", "H3", "H10", "HK"}, jokers: 0, lowest: 3, highest: 14, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{3, 5, 10, 13, 14}, sameSuit: true, sequential: false, froms: []Rank{}},
	{name: "flush 2", cards: [5]string{"C9", "C2", "C8", "CQ", "C4"}, jokers: 0, lowest: 2, highest: 12, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{2, 4, 8, 9, 12}, sameSuit: true, sequential: false, froms: []Rank{}},
	{name: "straight 1", cards: [5]string{"D4", "H2", "C5", "S6", "S3"}, jokers: 0, lowest: 2, highest: 6, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{2, 3, 4, 5, 6}, sameSuit: false, sequential: true, froms: []Rank{2}},
	{name: "straight 2", cards: [5]string{"D9", "DQ", "S10", "D8", "DJ"}, jokers: 0, lowest: 8, highest: 12, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{8, 9, 10, 11, 12}, sameSuit: false, sequential: true, froms: []Rank{8}},
	{name: "three of a kind 1", cards: [5]string{"D9", "DQ", "S9", "D8", "C9"}, jokers: 0, lowest: 8, highest: 12, kinds: [5]int{2, 0, 1, 0, 0}, ranks: []Rank{8, 9, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "three of a kind 2", cards: [5]string{"DA", "SA", "H2", "HK", "CA"}, jokers: 0, lowest: 2, highest: 14, kinds: [5]int{2, 0, 1, 0, 0}, ranks: []Rank{2, 13, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "two pair 1", cards: [5]string{"D9", "DQ", "S9", "D8", "SQ"}, jokers: 0, lowest: 8, highest: 12, kinds: [5]int{1, 2, 0, 0, 0}, ranks: []Rank{8, 9, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "two pair 2", cards: [5]string{"S8", "D4", "C4", "D8", "SA"}, jokers: 0, lowest: 4, highest: 14, kinds: [5]int{1, 2, 0, 0, 0}, ranks: []Rank{4, 8, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "one pair 1", cards: [5]string{"H9", "DJ", "C4", "D8", "S9"}, jokers: 0, lowest: 4, highest: 11, kinds: [5]int{3, 1, 0, 0, 0}, ranks: []Rank{4, 8, 9, 11}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "one pair 2", cards: [5]string{"S7", "H7", "CQ", "D6", "S2"}, jokers: 0, lowest: 2, highest: 12, kinds: [5]int{3, 1, 0, 0, 0}, ranks: []Rank{2, 6, 7, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "high cards 1", cards: [5]string{"S7", "HK", "CQ", "D6", "S2"}, jokers: 0, lowest: 2, highest: 13, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{2, 6, 7, 12, 13}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "high cards 2", cards: [5]string{"H2", "H6", "HQ", "HA", "S3"}, jokers: 0, lowest: 2, highest: 14, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{2, 3, 6, 12, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "high cards 3", cards: [5]string{"H5", "C4", "S7", "S2", "D3"}, jokers: 0, lowest: 2, highest: 7, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{2, 3, 4, 5, 7}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "high cards 4", cards: [5]string{"HA", "SK", "HQ", "C8", "HJ"}, jokers: 0, lowest: 8, highest: 14, kinds: [5]int{5, 0, 0, 0, 0}, ranks: []Rank{8, 11, 12, 13, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "royal flush 3", cards: [5]string{"  ", "HA", "HQ", "HJ", "HK"}, jokers: 1, lowest: 11, highest: 14, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{11, 12, 13, 14}, sameSuit: true, sequential: true, froms: []Rank{10}},
	{name: "royal flush 4", cards: [5]string{"CA", "  ", "  ", "C10", "CJ"}, jokers: 2, lowest: 10, highest: 14, kinds: [5]int{3, 0, 0, 0, 0}, ranks: []Rank{10, 11, 14}, sameSuit: true, sequential: true, froms: []Rank{10}},
	{name: "straight flush 3", cards: [5]string{"H6", "H5", "H7", "H4", "  "}, jokers: 1, lowest: 4, highest: 7, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{4, 5, 6, 7}, sameSuit: true, sequential: true, froms: []Rank{3, 4}},
	{name: "straight flush 4", cards: [5]string{"DQ", "D8", "D10", "  ", "  "}, jokers: 2, lowest: 8, highest: 12, kinds: [5]int{3, 0, 0, 0, 0}, ranks: []Rank{8, 10, 12}, sameSuit: true, sequential: true, froms: []Rank{8}},
	{name: "four of a kind 3", cards: [5]string{"DQ", "CQ", "D10", "  ", "SQ"}, jokers: 1, lowest: 10, highest: 12, kinds: [5]int{1, 0, 1, 0, 0}, ranks: []Rank{10, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "four of a kind 4", cards: [5]string{"  ", "CQ", "D8", "  ", "S8"}, jokers: 2, lowest: 8, highest: 12, kinds: [5]int{1, 1, 0, 0, 0}, ranks: []Rank{8, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "full house 3", cards: [5]string{"  ", "HQ", "S4", "D4", "SQ"}, jokers: 1, lowest: 4, highest: 12, kinds: [5]int{0, 2, 0, 0, 0}, ranks: []Rank{4, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "full house 4", cards: [5]string{"CA", "HA", "S3", "  ", "H3"}, jokers: 1, lowest: 3, highest: 14, kinds: [5]int{0, 2, 0, 0, 0}, ranks: []Rank{3, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "flush 3", cards: [5]string{"HA", "H5", "H3", "  ", "HK"}, jokers: 1, lowest: 3, highest: 14, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{3, 5, 13, 14}, sameSuit: true, sequential: false, froms: []Rank{}},
	{name: "flush 4", cards: [5]string{"C9", "  ", "C8", "  ", "C4"}, jokers: 2, lowest: 4, highest: 9, kinds: [5]int{3, 0, 0, 0, 0}, ranks: []Rank{4, 8, 9}, sameSuit: true, sequential: false, froms: []Rank{}},
	{name: "straight 3", cards: [5]string{"  ", "H2", "C5", "S6", "S3"}, jokers: 1, lowest: 2, highest: 6, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{2, 3, 5, 6}, sameSuit: false, sequential: true, froms: []Rank{2}},
	{name: "straight 4", cards: [5]string{"H9", "  ", "  ", "D8", "DJ"}, jokers: 2, lowest: 8, highest: 11, kinds: [5]int{3, 0, 0, 0, 0}, ranks: []Rank{8, 9, 11}, sameSuit: false, sequential: true, froms: []Rank{7, 8}},
	{name: "three of a kind 3", cards: [5]string{"D9", "DQ", "S9", "D8", "  "}, jokers: 1, lowest: 8, highest: 12, kinds: [5]int{2, 1, 0, 0, 0}, ranks: []Rank{8, 9, 12}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "three of a kind 4", cards: [5]string{"DA", "  ", "H2", "HK", "  "}, jokers: 2, lowest: 2, highest: 14, kinds: [5]int{3, 0, 0, 0, 0}, ranks: []Rank{2, 13, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "one pair 3", cards: [5]string{"S7", "HK", "CQ", "  ", "S2"}, jokers: 1, lowest: 2, highest: 13, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{2, 7, 12, 13}, sameSuit: false, sequential: false, froms: []Rank{}},
	{name: "one pair 4", cards: [5]string{"HA", "SK", "  ", "C8", "HJ"}, jokers: 1, lowest: 8, highest: 14, kinds: [5]int{4, 0, 0, 0, 0}, ranks: []Rank{8, 11, 13, 14}, sameSuit: false, sequential: false, froms: []Rank{}},
}

func TestHandQueries(t *testing.T) {
	for _, tt := range handFixtures {
		t.Run(tt.name, func(t *testing.T) {
			h := MustParseHand(tt.cards[0], tt.cards[1], tt.cards[2], tt.cards[3], tt.cards[4])

			assert.Equal(t, tt.jokers, h.Jokers(), "jokers")
			assert.Equal(t, tt.lowest, h.LowestRank(), "lowest rank")
			assert.Equal(t, tt.highest, h.HighestRank(), "highest rank")
			assert.Zero(t, h.CountOfRank(0), "absent ranks are not counted")
			for n := 1; n <= 5; n++ {
				assert.Equal(t, tt.kinds[n-1], h.CountOfRank(n), "CountOfRank(%d)", n)
			}
			for r := Two; r <= Ace; r++ {
				assert.Equal(t, containsRank(tt.ranks, r), h.HasRank(r), "HasRank(%d)", r)
			}
			assert.Equal(t, tt.sameSuit, h.IsSameSuit(), "same suit")
			assert.Equal(t, tt.sequential, h.IsSequential(), "sequential")
			if tt.sequential {
				for start := Two; start <= Ten; start++ {
					assert.Equal(t, containsRank(tt.froms, start), h.IsSequentialFrom(start), "IsSequentialFrom(%d)", start)
				}
			}
		})
	}
}

func TestHandQueriesIgnoreOrder(t *testing.T) {
	for _, tt := range handFixtures {
		t.Run(tt.name, func(t *testing.T) {
			h := MustParseHand(tt.cards[0], tt.cards[1], tt.cards[2], tt.cards[3], tt.cards[4])
			r := NewHand(h[4], h[2], h[0], h[3], h[1])

			assert.Equal(t, h.Jokers(), r.Jokers())
			assert.Equal(t, h.LowestRank(), r.LowestRank())
			assert.Equal(t, h.HighestRank(), r.HighestRank())
			for n := 1; n <= 5; n++ {
				assert.Equal(t, h.CountOfRank(n), r.CountOfRank(n))
			}
			assert.Equal(t, h.IsSameSuit(), r.IsSameSuit())
			assert.Equal(t, h.IsSequential(), r.IsSequential())
		})
	}
}

func TestIsSequentialAnchorsAtTen(t *testing.T) {
	// Lowest rank is Jack, so the run is checked from Ten: J Q K A plus one joker.
	h := MustParseHand("HJ", "HQ", "HK", "HA", "  ")
	assert.True(t, h.IsSequential())
	assert.True(t, h.IsSequentialFrom(Ten))

	// Lowest rank is Queen; Ten and Jack are both missing and one joker is not enough.
	h = MustParseHand("SQ", "SK", "SA", "DQ", "  ")
	assert.False(t, h.IsSequential())
}

func TestIsSequentialFromRunsPastAce(t *testing.T) {
	// Ranks above Ace never exist, so a run starting at Jack needs a joker for 15.
	h := MustParseHand("HJ", "HQ", "HK", "HA", "  ")
	assert.True(t, h.IsSequentialFrom(Jack))

	h = MustParseHand("HJ", "HQ", "HK", "HA", "H10")
	assert.False(t, h.IsSequentialFrom(Jack))
}

func TestAllJokersHand(t *testing.T) {
	j := NewJoker()
	h := NewHand(j, j, j, j, j)
	assert.Equal(t, 5, h.Jokers())
	assert.Equal(t, NoRank, h.LowestRank())
	assert.Equal(t, NoRank, h.HighestRank())
	assert.True(t, h.IsSameSuit())
	for n := 0; n <= 5; n++ {
		assert.Zero(t, h.CountOfRank(n), "CountOfRank(%d)", n)
	}
}

func TestCountOfRankOutsideRange(t *testing.T) {
	h := MustParseHand("H2", "H3", "H4", "H5", "H6")
	assert.Zero(t, h.CountOfRank(0))
	assert.Zero(t, h.CountOfRank(-1))
	assert.Equal(t, 5, h.CountOfRank(1))

	// Hand-built cards with ranks no parser produces are ignored
	h = NewHand(Card{Suit: Hearts, Rank: Wild}, Card{Suit: Spades, Rank: 15},
		MustParseCard("D9"), MustParseCard("C9"), MustParseCard("S4"))
	assert.NotPanics(t, func() { h.CountOfRank(1) })
	assert.Equal(t, 1, h.CountOfRank(1))
	assert.Equal(t, 1, h.CountOfRank(2))
}

func TestHandString(t *testing.T) {
	h := MustParseHand("H10", "  ", "CA", "D2", "SK")
	assert.Equal(t, "[H10][  ][CA][D2][SK]", h.String())
	assert.True(t, h.Contains(MustParseCard("CA")))
	assert.False(t, h.Contains(MustParseCard("CK")))
	assert.Equal(t, []Card{h[0], h[1], h[2], h[3], h[4]}, h.Cards())
}

func TestParseHandError(t *testing.T) {
	_, err := ParseHand("H2", "D9", "S10", "SJ", "X1")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseHand("H2", "D9", "S10", "SJ", "X1") })
}

func containsRank(ranks []Rank, r Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}
