package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/deck"
	"github.com/lox/drawpoker/internal/evaluator"
	"github.com/lox/drawpoker/internal/gameid"
)

var (
	// ErrSessionOver is returned by moves made after the final hand is fixed
	ErrSessionOver = errors.New("session is over")
	// ErrSessionInProgress is returned when asking for the result too early
	ErrSessionInProgress = errors.New("session is still in progress")
)

// EventKind identifies an entry in a session's history
type EventKind int

const (
	EventDealt EventKind = iota
	EventExchanged
	EventStood
	EventExhausted
)

func (k EventKind) String() string {
	switch k {
	case EventDealt:
		return "dealt"
	case EventExchanged:
		return "exchanged"
	case EventStood:
		return "stood"
	case EventExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Event is one timestamped step of a session
type Event struct {
	Kind      EventKind
	Time      time.Time
	Positions []int              // Exchanged positions, 0-based
	Hand      deck.Hand          // Hand after the step
	Category  evaluator.Category // Category of Hand
}

// Result summarises a finished session
type Result struct {
	ID         string
	Hand       deck.Hand
	Category   evaluator.Category
	RoundsUsed int
	Exchanged  int // Total cards replaced
	Duration   time.Duration
}

// Option configures a Session during creation
type Option func(*sessionConfig)

type sessionConfig struct {
	picker deck.Picker
	clock  quartz.Clock
	logger *log.Logger
	writer HistoryWriter
	idRand gameid.RandSource
}

// WithPicker sets the random source for the session's deck
func WithPicker(p deck.Picker) Option {
	return func(c *sessionConfig) { c.picker = p }
}

// WithClock sets the clock used for timestamps and the session ID
func WithClock(clock quartz.Clock) Option {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithLogger sets the logger for session events
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithHistoryWriter saves a transcript of the session when it ends
func WithHistoryWriter(w HistoryWriter) Option {
	return func(c *sessionConfig) { c.writer = w }
}

// WithIDRandSource makes session IDs reproducible
func WithIDRandSource(r gameid.RandSource) Option {
	return func(c *sessionConfig) { c.idRand = r }
}

// Session is a single game: one deal followed by up to Settings.Exchanges
// exchange rounds. It is not safe for concurrent use.
type Session struct {
	id       string
	settings Settings
	deck     *deck.Deck
	hand     deck.Hand

	roundsLeft int
	roundsUsed int
	exchanged  int
	over       bool

	started time.Time
	ended   time.Time
	history []Event

	clock  quartz.Clock
	logger *log.Logger
	writer HistoryWriter
}

// NewSession validates settings, builds a deck and deals the opening hand.
// A session configured with zero exchange rounds is over as soon as it is
// dealt.
func NewSession(settings Settings, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.writer == nil {
		cfg.writer = &NoOpHistoryWriter{}
	}

	var deckOpts []deck.Option
	if cfg.picker != nil {
		deckOpts = append(deckOpts, deck.WithPicker(cfg.picker))
	}
	d, err := deck.New(settings.Jokers, deckOpts...)
	if err != nil {
		return nil, err
	}

	hand, err := d.Deal()
	if err != nil {
		return nil, fmt.Errorf("dealing opening hand: %w", err)
	}

	id := gameid.NewGenerator(cfg.clock, cfg.idRand).Generate()
	s := &Session{
		id:         id,
		settings:   settings,
		deck:       d,
		hand:       hand,
		roundsLeft: settings.Exchanges,
		started:    cfg.clock.Now(),
		clock:      cfg.clock,
		logger:     cfg.logger.WithPrefix("session").With("id", id),
		writer:     cfg.writer,
	}

	s.record(EventDealt, nil)
	s.logger.Info("Dealt opening hand", "hand", hand, "category", s.Category(),
		"jokers", settings.Jokers, "exchanges", settings.Exchanges)

	if s.roundsLeft == 0 {
		s.finish()
	}
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Settings returns the settings the session was created with
func (s *Session) Settings() Settings { return s.settings }

// Hand returns the current hand
func (s *Session) Hand() deck.Hand { return s.hand }

// Category classifies the current hand
func (s *Session) Category() evaluator.Category { return evaluator.Classify(s.hand) }

// RoundsLeft returns how many exchanges the player may still make
func (s *Session) RoundsLeft() int { return s.roundsLeft }

// Remaining returns the number of cards left in the deck
func (s *Session) Remaining() int { return s.deck.Remaining() }

// IsOver reports whether the final hand is fixed
func (s *Session) IsOver() bool { return s.over }

// IsFirstRound reports whether the player has not exchanged yet
func (s *Session) IsFirstRound() bool { return s.roundsUsed == 0 }

// MaxSelectable returns how many cards the next exchange may replace
func (s *Session) MaxSelectable() int {
	return min(deck.HandSize, s.deck.Remaining())
}

// Exchange replaces the cards at the given 0-based positions and uses up one
// round. An empty selection stands. A rejected exchange leaves the session
// unchanged and does not use a round.
func (s *Session) Exchange(positions []int) error {
	if s.over {
		return ErrSessionOver
	}
	if len(positions) == 0 {
		return s.Stand()
	}

	if err := s.deck.Exchange(&s.hand, positions...); err != nil {
		s.logger.Warn("Exchange rejected", "positions", positions, "error", err)
		return fmt.Errorf("exchange: %w", err)
	}

	s.roundsLeft--
	s.roundsUsed++
	s.exchanged += len(positions)
	s.record(EventExchanged, positions)
	s.logger.Info("Exchanged cards", "positions", FormatSelection(positions),
		"hand", s.hand, "category", s.Category(), "rounds_left", s.roundsLeft)

	switch {
	case s.deck.IsEmpty():
		s.record(EventExhausted, nil)
		s.logger.Info("Deck exhausted")
		s.finish()
	case s.roundsLeft == 0:
		s.finish()
	}
	return nil
}

// Stand fixes the current hand as final
func (s *Session) Stand() error {
	if s.over {
		return ErrSessionOver
	}
	s.record(EventStood, nil)
	s.logger.Info("Player stood", "hand", s.hand, "category", s.Category())
	s.finish()
	return nil
}

// Result returns the outcome once the session is over
func (s *Session) Result() (Result, error) {
	if !s.over {
		return Result{}, ErrSessionInProgress
	}
	return Result{
		ID:         s.id,
		Hand:       s.hand,
		Category:   s.Category(),
		RoundsUsed: s.roundsUsed,
		Exchanged:  s.exchanged,
		Duration:   s.ended.Sub(s.started),
	}, nil
}

// History returns every event so far, oldest first
func (s *Session) History() []Event {
	out := make([]Event, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) record(kind EventKind, positions []int) {
	var p []int
	if len(positions) > 0 {
		p = append(p, positions...)
	}
	s.history = append(s.history, Event{
		Kind:      kind,
		Time:      s.clock.Now(),
		Positions: p,
		Hand:      s.hand,
		Category:  s.Category(),
	})
}

func (s *Session) finish() {
	s.over = true
	s.ended = s.clock.Now()

	result, _ := s.Result()
	s.logger.Info("Session finished", "hand", result.Hand, "category", result.Category,
		"rounds_used", result.RoundsUsed, "duration", result.Duration)

	if err := s.writer.WriteHistory(s.id, FormatHistory(s)); err != nil {
		s.logger.Warn("Failed to save session history", "error", err)
	}
}
