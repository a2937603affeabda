// meta/meta.go
package meta

// MAX_UNDO_DEPTH bounds the undo history; the oldest snapshots are evicted first.
const MAX_UNDO_DEPTH = 500

// MAX_MOVES caps a single autoplay game.
const MAX_MOVES = 1000

// SIM_GAMES is the default number of autoplay games for the driver.
const SIM_GAMES = 10
