// Package game runs one interactive session of draw poker.
//
// A Session deals five cards from a fresh deck and then lets the player
// exchange any subset of them for a configured number of rounds. Standing,
// running out of rounds, or emptying the deck ends the session and fixes the
// final category.
//
// # Basic Usage
//
//	s, err := game.NewSession(game.DefaultSettings())
//	if err != nil {
//	    return err
//	}
//	positions, err := game.ParseSelection("135", s.MaxSelectable())
//	if err != nil {
//	    return err
//	}
//	if err := s.Exchange(positions); err != nil {
//	    return err
//	}
//	if s.IsOver() {
//	    result, _ := s.Result()
//	    fmt.Println(result.Category)
//	}
//
// # Deterministic Testing
//
// Randomness and time are both injected. Pass WithPicker with a seeded
// randutil.New or a scripted randutil.Sequence, and WithClock with a
// quartz mock:
//
//	s, err := game.NewSession(settings,
//	    game.WithPicker(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)))
package game
