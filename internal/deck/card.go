package deck

import (
	"fmt"
	"strconv"

	"golang.org/x/text/width"
)

// Suit represents a card suit. Joker is modelled as its own suit.
type Suit int

const (
	NoSuit Suit = iota
	Hearts
	Spades
	Diamonds
	Clubs
	Joker
)

// StandardSuits lists the four non-joker suits in deck order
var StandardSuits = [...]Suit{Hearts, Spades, Diamonds, Clubs}

// Valid reports whether s is one of the five known suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Joker
}

// Letter returns the single character used in card notation
func (s Suit) Letter() byte {
	switch s {
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	case Diamonds:
		return 'D'
	case Clubs:
		return 'C'
	case Joker:
		return ' '
	default:
		return '?'
	}
}

// String returns the notation letter of a suit
func (s Suit) String() string {
	return string(s.Letter())
}

// Symbol returns the pictogram for the suit (e.g. "♥")
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Joker:
		return "★"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high.
type Rank int

const (
	// Wild is the rank every joker carries
	Wild Rank = -1
	// NoRank is returned by queries that have no non-joker card to look at
	NoRank Rank = 0
)

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the notation token for a rank ("2".."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case Wild:
		return " "
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Card represents a playing card. Cards are values; two cards are equal when
// suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card, validating suit and rank. The rank of a joker is
// ignored and replaced by Wild.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, ErrInvalidSuit
	}
	if suit == Joker {
		return Card{Suit: Joker, Rank: Wild}, nil
	}
	if rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, int(rank))
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// NewJoker returns a joker card
func NewJoker() Card {
	return Card{Suit: Joker, Rank: Wild}
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// String returns the notation form of a card (e.g. "H10", "CA", "  ").
func (c Card) String() string {
	return c.ShortForm()
}

// ShortForm returns the suit letter followed by the rank token. The result
// round-trips through ParseCard.
func (c Card) ShortForm() string {
	return c.Suit.String() + c.Rank.String()
}

// WideSuit returns the suit letter in full-width form ("Ｈ", "　" for jokers)
func (c Card) WideSuit() string {
	return width.Widen.String(c.Suit.String())
}

// WideRank returns the rank token in full-width form. Ten is kept as the two
// half-width digits so that every rank occupies two terminal columns.
func (c Card) WideRank() string {
	if c.Rank == Ten {
		return "10"
	}
	return width.Widen.String(c.Rank.String())
}

// Wide returns the full-width suit and rank together
func (c Card) Wide() string {
	return c.WideSuit() + c.WideRank()
}
