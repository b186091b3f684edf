package deck

import (
	"slices"

	"github.com/lox/drawpoker/internal/randutil"
)

const (
	// MaxJokers is the largest number of jokers a deck can be built with
	MaxJokers = 2
	// StandardSize is the number of non-joker cards in a deck
	StandardSize = 52
)

// Picker chooses a position in [0, n). *rand.Rand from math/rand/v2 and
// randutil.Sequence both satisfy it.
type Picker interface {
	IntN(n int) int
}

// Deck holds the cards left to draw and the cards discarded by exchanges.
// Cards are drawn uniformly at random without replacement and the deck is
// never reshuffled.
type Deck struct {
	cards   []Card
	discard []Card
	jokers  int
	picker  Picker
}

// Option configures a Deck
type Option func(*Deck)

// WithPicker replaces the random source used for draws
func WithPicker(p Picker) Option {
	return func(d *Deck) {
		d.picker = p
	}
}

// New creates a full 52-card deck plus the given number of jokers
func New(jokers int, opts ...Option) (*Deck, error) {
	if jokers < 0 || jokers > MaxJokers {
		return nil, &JokerCountError{Count: jokers}
	}

	d := &Deck{
		cards:   make([]Card, 0, StandardSize+jokers),
		discard: make([]Card, 0, StandardSize+jokers),
		jokers:  jokers,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.picker == nil {
		d.picker = randutil.NewEntropy()
	}

	for _, suit := range StandardSuits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	for range jokers {
		d.cards = append(d.cards, NewJoker())
	}

	return d, nil
}

// Deal draws a new five-card hand
func (d *Deck) Deal() (Hand, error) {
	if len(d.cards) < HandSize {
		return Hand{}, &DeficitError{Shortfall: HandSize - len(d.cards)}
	}

	var hand Hand
	for i := range hand {
		hand[i] = d.draw()
	}
	return hand, nil
}

// Exchange discards the cards at the given positions and replaces each with a
// freshly drawn card. Positions are validated and the deck is checked for
// enough cards before anything changes, so on error the hand and deck are
// left untouched.
func (d *Deck) Exchange(hand *Hand, indices ...int) error {
	var seen [HandSize]bool
	for _, idx := range indices {
		if idx < 0 || idx >= HandSize {
			return &IndexError{Index: idx, Err: ErrInvalidIndex}
		}
		if seen[idx] {
			return &IndexError{Index: idx, Err: ErrDuplicateIndex}
		}
		seen[idx] = true
	}
	if len(d.cards) < len(indices) {
		return &DeficitError{Shortfall: len(indices) - len(d.cards)}
	}

	for _, idx := range indices {
		d.discard = append(d.discard, hand[idx])
		hand[idx] = d.draw()
	}
	return nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Discarded returns a copy of the discard pile in discard order
func (d *Deck) Discarded() []Card {
	out := make([]Card, len(d.discard))
	copy(out, d.discard)
	return out
}

// Jokers returns the number of jokers the deck was built with
func (d *Deck) Jokers() int {
	return d.jokers
}

// draw removes one card chosen uniformly from the remaining cards. The
// relative order of the rest is kept so that a scripted picker yields a
// predictable sequence.
func (d *Deck) draw() Card {
	i := d.picker.IntN(len(d.cards))
	card := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	return card
}
