// Package evaluator classifies five-card hands, jokers included, into one of
// eleven poker categories.
//
// Classification walks a fixed table of rules from the strongest category to
// the weakest and returns the first rule that matches. Several rules would
// also match weaker hands on their own (every full house contains a pair),
// so table order is part of the behaviour.
package evaluator

import "github.com/lox/drawpoker/internal/deck"

type rule struct {
	category Category
	match    func(h deck.Hand) bool
}

var rules = [...]rule{
	{FiveOfAKind, isFiveOfAKind},
	{RoyalFlush, isRoyalFlush},
	{StraightFlush, isStraightFlush},
	{FourOfAKind, isFourOfAKind},
	{FullHouse, isFullHouse},
	{Flush, isFlush},
	{Straight, isStraight},
	{ThreeOfAKind, isThreeOfAKind},
	{TwoPair, isTwoPair},
	{OnePair, isOnePair},
	{HighCards, isHighCards},
}

// Classify returns the strongest category the hand satisfies, or NoCategory
// if no rule matches.
func Classify(h deck.Hand) Category {
	for _, r := range rules {
		if r.match(h) {
			return r.category
		}
	}
	return NoCategory
}

// Matches evaluates a single category rule in isolation, without regard to
// any stronger category the hand may also satisfy.
func Matches(c Category, h deck.Hand) bool {
	if !c.Valid() {
		return false
	}
	return rules[c].match(h)
}

func isFiveOfAKind(h deck.Hand) bool {
	return h.CountOfRank(5-h.Jokers()) == 1
}

func isRoyalFlush(h deck.Hand) bool {
	return h.IsSameSuit() && h.IsSequentialFrom(deck.Ten)
}

func isStraightFlush(h deck.Hand) bool {
	return h.IsSameSuit() && h.IsSequential() && !h.IsSequentialFrom(deck.Ten)
}

func isFourOfAKind(h deck.Hand) bool {
	return h.CountOfRank(4-h.Jokers()) == 1
}

func isFullHouse(h deck.Hand) bool {
	return (h.CountOfRank(3) == 1 && h.CountOfRank(2) == 1) ||
		(h.CountOfRank(2) == 2 && h.Jokers() == 1)
}

func isFlush(h deck.Hand) bool {
	return h.IsSameSuit() && !h.IsSequential()
}

func isStraight(h deck.Hand) bool {
	return h.IsSequential() && !h.IsSameSuit()
}

func isThreeOfAKind(h deck.Hand) bool {
	j := h.Jokers()
	return (h.CountOfRank(3) == 1 && h.CountOfRank(1) == 2) ||
		(j == 1 && h.CountOfRank(1) == 2 && h.CountOfRank(2) == 1) ||
		(j == 2 && h.CountOfRank(1) == 3 && !h.IsSameSuit() && !h.IsSequential())
}

func isTwoPair(h deck.Hand) bool {
	return h.CountOfRank(2) == 2 && h.CountOfRank(1) == 1
}

func isOnePair(h deck.Hand) bool {
	return (h.CountOfRank(2) == 1 && h.CountOfRank(1) == 3) ||
		(h.Jokers() == 1 && h.CountOfRank(1) == 4 && !h.IsSameSuit() && !h.IsSequential())
}

func isHighCards(h deck.Hand) bool {
	return !h.IsSameSuit() && !h.IsSequential() && h.CountOfRank(1) == 5
}
