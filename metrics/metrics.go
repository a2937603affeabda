package metrics

import "time"

// GameRecord summarizes one autoplay game.
type GameRecord struct {
	ID         int
	Moves      int
	Score      int
	Foundation int // cards on the foundations when play stopped
	Hints      int // hint moves followed
	Draws      int // stock actions taken
	Won        bool
	Duration   time.Duration
}
