package deck

import "strings"

// HandSize is the number of cards in a hand
const HandSize = 5

// Hand is a five-card hand. Position order only matters for display and for
// mapping exchange positions; every query below is order-independent.
type Hand [HandSize]Card

// NewHand builds a hand from five cards
func NewHand(c1, c2, c3, c4, c5 Card) Hand {
	return Hand{c1, c2, c3, c4, c5}
}

// ParseHand parses five card strings into a hand
func ParseHand(s1, s2, s3, s4, s5 string) (Hand, error) {
	cards, err := ParseCards(s1, s2, s3, s4, s5)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards[0], cards[1], cards[2], cards[3], cards[4]), nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s1, s2, s3, s4, s5 string) Hand {
	cards := MustParseCards(s1, s2, s3, s4, s5)
	return NewHand(cards[0], cards[1], cards[2], cards[3], cards[4])
}

// Cards returns the cards as a slice
func (h Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h[:])
	return cards
}

// String renders the hand as "[H10][HA][HQ][HJ][HK]"
func (h Hand) String() string {
	var b strings.Builder
	for _, c := range h {
		b.WriteByte('[')
		b.WriteString(c.String())
		b.WriteByte(']')
	}
	return b.String()
}

// Contains reports whether the hand holds the given card
func (h Hand) Contains(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}
	return false
}

// Jokers returns how many jokers the hand holds
func (h Hand) Jokers() int {
	n := 0
	for _, c := range h {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// LowestRank returns the lowest rank among non-joker cards, or NoRank when
// every card is a joker.
func (h Hand) LowestRank() Rank {
	lowest := NoRank
	for _, c := range h {
		if c.IsJoker() {
			continue
		}
		if lowest == NoRank || c.Rank < lowest {
			lowest = c.Rank
		}
	}
	return lowest
}

// HighestRank returns the highest rank among non-joker cards, or NoRank when
// every card is a joker.
func (h Hand) HighestRank() Rank {
	highest := NoRank
	for _, c := range h {
		if !c.IsJoker() && c.Rank > highest {
			highest = c.Rank
		}
	}
	return highest
}

// CountOfRank returns the number of distinct ranks that appear on exactly n
// non-joker cards. CountOfRank(2) == 2 means the hand has two pairs. Jokers
// are never counted towards any rank, and neither are ranks outside Two..Ace
// on hand-built cards. Ranks that do not appear are never counted, so
// CountOfRank(0) is always 0.
func (h Hand) CountOfRank(n int) int {
	if n < 1 {
		return 0
	}

	var counts [Ace + 1]int
	for _, c := range h {
		if !c.IsJoker() && c.Rank >= Two && c.Rank <= Ace {
			counts[c.Rank]++
		}
	}

	found := 0
	for r := Two; r <= Ace; r++ {
		if counts[r] == n {
			found++
		}
	}
	return found
}

// HasRank reports whether any non-joker card carries rank r
func (h Hand) HasRank(r Rank) bool {
	for _, c := range h {
		if !c.IsJoker() && c.Rank == r {
			return true
		}
	}
	return false
}

// IsSequentialFrom reports whether the ranks start..start+4 are all present,
// using one joker for each missing rank.
func (h Hand) IsSequentialFrom(start Rank) bool {
	jokers := h.Jokers()
	for r := start; r < start+HandSize; r++ {
		if h.HasRank(r) {
			continue
		}
		jokers--
		if jokers < 0 {
			return false
		}
	}
	return true
}

// IsSequential checks for a run anchored at the lowest rank, or at Ten when
// the lowest rank is above Ten. It does not search other starting points.
func (h Hand) IsSequential() bool {
	return h.IsSequentialFrom(min(h.LowestRank(), Ten))
}

// IsSameSuit reports whether every non-joker card shares one suit. A hand
// with one or no non-joker cards is trivially same-suited.
func (h Hand) IsSameSuit() bool {
	suit := NoSuit
	for _, c := range h {
		if c.IsJoker() {
			continue
		}
		if suit != NoSuit && c.Suit != suit {
			return false
		}
		suit = c.Suit
	}
	return true
}
