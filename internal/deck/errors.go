package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSuit       = errors.New("invalid suit")
	ErrInvalidRank       = errors.New("rank must be between 2 and 14 for non-joker cards")
	ErrInvalidJokerCount = errors.New("joker count out of range")
	ErrInvalidIndex      = errors.New("hand position out of range")
	ErrDuplicateIndex    = errors.New("hand position repeated")
	ErrDeckDeficit       = errors.New("not enough cards in deck")
)

// ParseError reports a malformed card string and the part of it that could
// not be understood.
type ParseError struct {
	Input string
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q in card %q", e.Token, e.Input)
}

// JokerCountError reports a deck configured with an unsupported joker count
type JokerCountError struct {
	Count int
}

func (e *JokerCountError) Error() string {
	return fmt.Sprintf("joker count must be between 0 and %d, got %d", MaxJokers, e.Count)
}

func (e *JokerCountError) Unwrap() error { return ErrInvalidJokerCount }

// DeficitError reports how many cards a deal or exchange was short by
type DeficitError struct {
	Shortfall int
}

func (e *DeficitError) Error() string {
	if e.Shortfall == 1 {
		return "deck is 1 card short"
	}
	return fmt.Sprintf("deck is %d cards short", e.Shortfall)
}

func (e *DeficitError) Unwrap() error { return ErrDeckDeficit }

// IndexError reports a bad hand position passed to Exchange
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d", e.Err, e.Index)
}

func (e *IndexError) Unwrap() error { return e.Err }
