// Package game coordinates one device's bingo session.
//
// A Session starts on the landing screen and can enter either host mode,
// where items are drawn from the pool one at a time, or player mode, where a
// fresh card is dealt and marked. Host and player never share state; both
// read the same immutable pool.
//
// # Basic Usage
//
//	s := game.NewSession(pool.Default())
//	_ = s.StartHost()
//	item, ok, _ := s.DrawNext()
//	s.ExitToLanding()
//
//	_ = s.StartPlayer()
//	card := s.Player().Card()
//	_ = s.ToggleMark(card[0].ID)
//	if s.Player().HasWon() {
//	    _ = s.DismissWin()
//	}
//
// # Deterministic Testing
//
// Randomness and time are injected:
//
//	s := game.NewSession(p,
//	    game.WithRand(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)))
package game
