package deck

import (
	"fmt"
	"unicode/utf8"
)

// ParseCard parses a card written as a suit letter followed by a rank token.
// Suits: H (hearts), S (spades), D (diamonds), C (clubs) or a space for a joker.
// Ranks: 2-9, 10, J, Q, K, A, or a space for a joker.
//
// Examples: "H2", "D10", "SA", "  " (joker).
func ParseCard(s string) (Card, error) {
	if s == "" {
		return Card{}, &ParseError{Input: s, Token: ""}
	}

	suit, ok := parseSuit(s[0])
	if !ok {
		_, size := utf8.DecodeRuneInString(s)
		return Card{}, &ParseError{Input: s, Token: s[:size]}
	}

	rest := s[1:]
	var rank Rank
	switch {
	case len(rest) == 1:
		rank, ok = parseRank(rest[0])
		if !ok {
			return Card{}, &ParseError{Input: s, Token: rest}
		}
	case rest == "10":
		rank = Ten
	default:
		return Card{}, &ParseError{Input: s, Token: rest}
	}

	card, err := NewCard(suit, rank)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return card, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return card
}

// ParseCards parses each string in turn, stopping at the first error
func ParseCards(ss ...string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		card, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(ss ...string) []Card {
	cards, err := ParseCards(ss...)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", ss, err))
	}
	return cards
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'H':
		return Hearts, true
	case 'S':
		return Spades, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	case ' ':
		return Joker, true
	default:
		return NoSuit, false
	}
}

// parseRank accepts any single digit so that out-of-range values such as "1"
// are reported by NewCard as invalid ranks rather than as parse failures.
func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'J':
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	case 'A':
		return Ace, true
	case ' ':
		return Wild, true
	default:
		if c >= '0' && c <= '9' {
			return Rank(c - '0'), true
		}
		return NoRank, false
	}
}
