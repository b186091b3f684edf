package game

import (
	"errors"
	"fmt"

	"github.com/lox/drawpoker/internal/deck"
)

const (
	// DefaultJokers is the joker count a fresh install plays with
	DefaultJokers = 0
	// DefaultExchanges is the number of exchange rounds a fresh install allows
	DefaultExchanges = 1
	// MaxExchanges bounds the exchange rounds a player can configure
	MaxExchanges = 20
)

// ErrInvalidExchanges is returned when the exchange round count is out of range
var ErrInvalidExchanges = errors.New("invalid exchange count")

// Settings are the player-adjustable game options
type Settings struct {
	Jokers    int // Jokers added to the deck, 0 to deck.MaxJokers
	Exchanges int // Exchange rounds per session, 0 to MaxExchanges
}

// DefaultSettings returns the settings a fresh install plays with
func DefaultSettings() Settings {
	return Settings{Jokers: DefaultJokers, Exchanges: DefaultExchanges}
}

// Reset restores the defaults
func (s *Settings) Reset() {
	*s = DefaultSettings()
}

// SetJokers changes the joker count, leaving s untouched if n is out of range
func (s *Settings) SetJokers(n int) error {
	if err := validateJokers(n); err != nil {
		return err
	}
	s.Jokers = n
	return nil
}

// SetExchanges changes the exchange round count, leaving s untouched if n is
// out of range
func (s *Settings) SetExchanges(n int) error {
	if err := validateExchanges(n); err != nil {
		return err
	}
	s.Exchanges = n
	return nil
}

// Validate checks both values are in range
func (s Settings) Validate() error {
	if err := validateJokers(s.Jokers); err != nil {
		return err
	}
	return validateExchanges(s.Exchanges)
}

func validateJokers(n int) error {
	if n < 0 || n > deck.MaxJokers {
		return &deck.JokerCountError{Count: n}
	}
	return nil
}

func validateExchanges(n int) error {
	if n < 0 || n > MaxExchanges {
		return fmt.Errorf("%w: %d is outside 0-%d", ErrInvalidExchanges, n, MaxExchanges)
	}
	return nil
}
