package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/lox/drawpoker/internal/deck"
)

// ErrInvalidSelection is the sentinel behind every *SelectionError
var ErrInvalidSelection = errors.New("invalid selection")

// SelectionError explains why a line of player input was rejected
type SelectionError struct {
	Input  string
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid selection %q: %s", e.Input, e.Reason)
}

func (e *SelectionError) Unwrap() error { return ErrInvalidSelection }

// ParseSelection turns player input such as "135" or "1, 3, 5" into 0-based
// hand positions. Each position is a digit 1-5; whitespace and commas are
// ignored and full-width digits are accepted. An empty selection means stand.
// At most limit positions may be chosen.
func ParseSelection(input string, limit int) ([]int, error) {
	normalized := width.Fold.String(input)

	var positions []int
	var seen [deck.HandSize]bool
	for _, r := range normalized {
		switch {
		case unicode.IsSpace(r) || r == ',':
			continue
		case r < '1' || r > '0'+deck.HandSize:
			return nil, &SelectionError{Input: input, Reason: fmt.Sprintf("only card numbers 1 to %d are allowed", deck.HandSize)}
		}

		pos := int(r - '1')
		if seen[pos] {
			return nil, &SelectionError{Input: input, Reason: fmt.Sprintf("card %d chosen more than once", pos+1)}
		}
		seen[pos] = true
		positions = append(positions, pos)
	}

	if len(positions) > limit {
		reason := fmt.Sprintf("at most %d cards can be exchanged at once", limit)
		if limit < deck.HandSize {
			reason = "not enough cards left in the deck, " + reason
		}
		return nil, &SelectionError{Input: input, Reason: reason}
	}
	return positions, nil
}

// FormatSelection renders 0-based positions as the 1-based list players type
func FormatSelection(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprint(p + 1)
	}
	return strings.Join(parts, ", ")
}
