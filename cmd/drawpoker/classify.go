package main

import (
	"fmt"
	"strings"

	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/evaluator"
)

type ClassifyCmd struct {
	Cards   []string `arg:"" help:"Five cards such as H10 SA D2, with JK or ** for a joker"`
	Verbose bool     `help:"Also print the parsed hand"`
}

// jokerAliases are shell-friendly spellings of the two-space joker
var jokerAliases = map[string]bool{"JK": true, "**": true}

// parseHandArgs reads exactly five card arguments
func parseHandArgs(args []string) (deck.Hand, error) {
	if len(args) != deck.HandSize {
		return deck.Hand{}, fmt.Errorf("expected %d cards, got %d", deck.HandSize, len(args))
	}

	var h deck.Hand
	for i, arg := range args {
		if jokerAliases[strings.ToUpper(arg)] {
			h[i] = deck.NewJoker()
			continue
		}
		card, err := deck.ParseCard(arg)
		if err != nil {
			return deck.Hand{}, err
		}
		h[i] = card
	}
	return h, nil
}

func (c *ClassifyCmd) Run(globals *Globals) error {
	h, err := parseHandArgs(c.Cards)
	if err != nil {
		return err
	}

	category := evaluator.Classify(h)
	if c.Verbose {
		fmt.Printf("%s %s\n", h, category)
		return nil
	}
	fmt.Println(category)
	return nil
}
