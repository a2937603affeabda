// Package engine sequences user actions against the rules core. One logical
// action runs to completion (snapshot, mutation, scoring, win check) before
// the next is accepted; the animation windows only delay the next accepted
// action, never the mutation itself.
package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"klondike/game"
	"klondike/hint"
	"klondike/history"
)

// MoveUpdate is pushed to the host after any state-affecting action.
type MoveUpdate struct {
	Moves      int
	Score      int
	StockCount int
}

// WinEvent carries the final tallies when all foundations are complete.
// TimeSeconds is measured from the first successful action of the deal.
type WinEvent struct {
	Moves       int
	Score       int
	TimeSeconds int
}

// Renderer is the boundary to the presentation surface. The coordinator
// pushes the authoritative state after every accepted action; drawing it is
// entirely the host's concern.
type Renderer interface {
	Render(*game.GameState)
}

// Callbacks are the host notifications. Any of them may be nil.
type Callbacks struct {
	OnMove      func(MoveUpdate)
	OnFirstMove func()
	OnWin       func(WinEvent)
	OnDeal      func(*game.GameState)
}

// Coordinator owns the live GameState and is the only path through which it
// is mutated after a deal.
type Coordinator struct {
	cfg      Config
	cb       Callbacks
	renderer Renderer
	rng      *rand.Rand
	logger   zerolog.Logger

	state  *game.GameState
	undo   *history.Stack
	hinted *game.HintMove
	won    bool

	moveBusyUntil time.Time
	flipBusyUntil time.Time
	firstMoveAt   time.Time
	moved         bool

	now func() time.Time
}

func New(cfg Config, renderer Renderer, cb Callbacks) *Coordinator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Coordinator{
		cfg:      cfg,
		cb:       cb,
		renderer: renderer,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.With().Str("component", "coordinator").Logger(),
		undo:     history.NewStack(cfg.MaxUndo),
		now:      time.Now,
	}
}

// InitializeNewDeal replaces the state wholesale, clears undo history and any
// hint, and returns the fresh state for initial render.
func (c *Coordinator) InitializeNewDeal() *game.GameState {
	c.state = game.NewGameState(c.rng)
	c.undo.Reset()
	c.hinted = nil
	c.won = false
	c.moved = false
	c.moveBusyUntil = time.Time{}
	c.flipBusyUntil = time.Time{}

	c.logger.Info().Int("stock", len(c.state.Stock)).Msg("new deal")
	if c.cb.OnDeal != nil {
		c.cb.OnDeal(c.state)
	}
	c.render()
	return c.state
}

// State returns the live game state. Callers other than the coordinator must
// treat it as read-only.
func (c *Coordinator) State() *game.GameState {
	return c.state
}

// Animating reports whether a move settle or a flip is still in flight. New
// actions are dropped, not queued, while this is true.
func (c *Coordinator) Animating() bool {
	now := c.now()
	return now.Before(c.moveBusyUntil) || now.Before(c.flipBusyUntil)
}

// perform runs one mutating action under the move discipline: reject while
// animating, snapshot before any mutation, then notifications after.
func (c *Coordinator) perform(action func(gs *game.GameState) bool) bool {
	if c.state == nil || c.Animating() {
		return false
	}

	c.undo.Push(c.state)
	if !action(c.state) {
		// Nothing changed, so the move keeps no history entry.
		c.undo.Drop()
		return false
	}

	c.hinted = nil
	c.registerMove(c.state.LastReveal)
	return true
}

func (c *Coordinator) registerMove(revealed bool) {
	now := c.now()

	if !c.moved {
		c.moved = true
		c.firstMoveAt = now
		if c.cb.OnFirstMove != nil {
			c.cb.OnFirstMove()
		}
	}

	if d := c.cfg.MoveDuration(); d > 0 {
		c.moveBusyUntil = now.Add(d)
	}
	if revealed {
		if d := c.cfg.FlipDuration(); d > 0 {
			c.flipBusyUntil = now.Add(d)
		}
	}

	c.notifyMove()
	c.render()

	if c.state.IsWon() && !c.won {
		c.won = true
		elapsed := int(now.Sub(c.firstMoveAt).Seconds())
		c.logger.Info().Int("moves", c.state.MoveCount).Int("score", c.state.Score).Int("seconds", elapsed).Msg("game won")
		if c.cb.OnWin != nil {
			c.cb.OnWin(WinEvent{
				Moves:       c.state.MoveCount,
				Score:       c.state.Score,
				TimeSeconds: elapsed,
			})
		}
	}
}

func (c *Coordinator) notifyMove() {
	if c.cb.OnMove != nil {
		c.cb.OnMove(MoveUpdate{
			Moves:      c.state.MoveCount,
			Score:      c.state.Score,
			StockCount: len(c.state.Stock),
		})
	}
}

func (c *Coordinator) render() {
	if c.renderer != nil {
		c.renderer.Render(c.state)
	}
}

// HandleStockAction draws from the stock, or recycles the waste when the
// stock is exhausted.
func (c *Coordinator) HandleStockAction() bool {
	return c.perform((*game.GameState).DrawFromStock)
}

// HandleWasteAction auto-moves the waste's top card.
func (c *Coordinator) HandleWasteAction() bool {
	return c.perform((*game.GameState).TryAutoMoveFromWaste)
}

// HandleTableauAction auto-moves the run starting at the clicked card: a
// clicked top card goes to its foundation first, otherwise the run goes to
// the first column that accepts it.
func (c *Coordinator) HandleTableauAction(col int, cardID int) bool {
	return c.perform(func(gs *game.GameState) bool {
		run, ok := gs.RunFromCard(col, cardID)
		if !ok {
			return false
		}
		from := game.Location{Kind: game.TableauPile, Index: col}
		if len(run) == 1 {
			if idx, ok := gs.FoundationFor(run[0]); ok && gs.MoveCardToFoundation(from, idx, run[0]) {
				return true
			}
		}
		for dest := 0; dest < game.TableauColumns; dest++ {
			if dest == col {
				continue
			}
			if gs.CanMoveToTableau(run, dest) {
				return gs.MoveCardsToTableau(from, dest, run)
			}
		}
		return false
	})
}

// HandleDropAction applies a drag-and-drop of the identified cards. The ids
// must be the source pile's topmost cards, bottom to top.
func (c *Coordinator) HandleDropAction(from, to game.Location, cardIDs []int) bool {
	return c.perform(func(gs *game.GameState) bool {
		run, ok := gs.RunForDrop(from, cardIDs)
		if !ok {
			return false
		}
		switch to.Kind {
		case game.FoundationPile:
			if len(run) != 1 {
				return false
			}
			return gs.MoveCardToFoundation(from, to.Index, run[0])
		case game.TableauPile:
			return gs.MoveCardsToTableau(from, to.Index, run)
		}
		return false
	})
}

// HandleFoundationAction plays a foundation's top card back onto the first
// eligible tableau column.
func (c *Coordinator) HandleFoundationAction(foundation int) bool {
	return c.perform(func(gs *game.GameState) bool {
		return gs.TryMoveFoundationToTableau(foundation)
	})
}

// RequestHint returns the current suggestion, computing it if no valid one is
// cached. Any successful move, deal, or undo invalidates the cache.
func (c *Coordinator) RequestHint() (game.HintMove, bool) {
	if c.state == nil {
		return game.HintMove{}, false
	}
	if c.hinted != nil {
		return *c.hinted, true
	}
	h, ok := hint.Find(c.state)
	if !ok {
		return game.HintMove{}, false
	}
	c.hinted = &h
	return h, true
}

// ClearHint discards any cached suggestion.
func (c *Coordinator) ClearHint() {
	c.hinted = nil
}

// CanUndo reports whether a move can be reverted.
func (c *Coordinator) CanUndo() bool {
	return c.undo.CanUndo()
}

// UndoLastMove restores the most recent snapshot as the authoritative state.
// Returns false, leaving everything untouched, when no history exists or an
// animation is in flight.
func (c *Coordinator) UndoLastMove() bool {
	if c.state == nil || c.Animating() {
		return false
	}
	restored := c.undo.Pop()
	if restored == nil {
		return false
	}
	c.state = restored
	c.hinted = nil
	c.notifyMove()
	c.render()
	return true
}
