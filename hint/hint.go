// Package hint computes at most one suggested move for the current position.
// It only ever reads game state: no card is flipped and no count or score is
// touched while searching.
package hint

import "klondike/game"

// Find scans the visible pile tops in priority order and returns the first
// legal candidate:
//  1. tableau-sourced moves (to foundation or another column) that would
//     reveal a face-down card
//  2. tableau top cards onto their foundation
//  3. the waste top card onto a tableau column
//  4. remaining tableau top cards onto another column
//
// Within a tier, columns and foundations are scanned in ascending index and
// the first hit wins. Returns false when no legal move exists.
func Find(gs *game.GameState) (game.HintMove, bool) {
	if gs == nil {
		return game.HintMove{}, false
	}

	// Revealing moves: a column's whole face-up run to another column, or
	// its lone face-up card to the foundation.
	for col := 0; col < game.TableauColumns; col++ {
		run := gs.FaceUpRun(col)
		if len(run) == 0 || !wouldReveal(gs, col, len(run)) {
			continue
		}
		if len(run) == 1 {
			if f, ok := gs.FoundationFor(run[0]); ok {
				return game.HintMove{
					From:       game.Location{Kind: game.TableauPile, Index: col},
					To:         game.Location{Kind: game.FoundationPile, Index: f},
					Cards:      1,
					WillReveal: true,
				}, true
			}
		}
		if dest, ok := tableauDest(gs, run, col); ok {
			return game.HintMove{
				From:       game.Location{Kind: game.TableauPile, Index: col},
				To:         game.Location{Kind: game.TableauPile, Index: dest},
				Cards:      len(run),
				WillReveal: true,
			}, true
		}
	}

	// Non-revealing foundation moves off the tableau.
	for col := 0; col < game.TableauColumns; col++ {
		column := gs.Tableau[col]
		if len(column) == 0 {
			continue
		}
		top := column[len(column)-1]
		if !top.FaceUp {
			continue
		}
		if f, ok := gs.FoundationFor(top); ok {
			return game.HintMove{
				From:  game.Location{Kind: game.TableauPile, Index: col},
				To:    game.Location{Kind: game.FoundationPile, Index: f},
				Cards: 1,
			}, true
		}
	}

	// Waste top onto the tableau.
	if len(gs.Waste) > 0 {
		card := gs.Waste[len(gs.Waste)-1]
		for col := 0; col < game.TableauColumns; col++ {
			if gs.CanMoveToTableau([]game.Card{card}, col) {
				return game.HintMove{
					From:  game.Location{Kind: game.WastePile},
					To:    game.Location{Kind: game.TableauPile, Index: col},
					Cards: 1,
				}, true
			}
		}
	}

	// Remaining single top-card moves between columns.
	for col := 0; col < game.TableauColumns; col++ {
		column := gs.Tableau[col]
		if len(column) == 0 {
			continue
		}
		top := column[len(column)-1]
		if !top.FaceUp {
			continue
		}
		if dest, ok := tableauDest(gs, []game.Card{top}, col); ok {
			return game.HintMove{
				From:       game.Location{Kind: game.TableauPile, Index: col},
				To:         game.Location{Kind: game.TableauPile, Index: dest},
				Cards:      1,
				WillReveal: wouldReveal(gs, col, 1),
			}, true
		}
	}

	return game.HintMove{}, false
}

// wouldReveal mirrors the engine's reveal check without flipping anything:
// would the column's new top card, after removing n cards, be face-down.
func wouldReveal(gs *game.GameState, col, n int) bool {
	column := gs.Tableau[col]
	return n > 0 && len(column) > n && !column[len(column)-n-1].FaceUp
}

// tableauDest finds the lowest-index column accepting the run. The source
// column is excluded, and a run that already starts its column is not offered
// an empty destination (shuffling a bare king pile achieves nothing).
func tableauDest(gs *game.GameState, run []game.Card, src int) (int, bool) {
	wholeColumn := len(run) == len(gs.Tableau[src])
	for col := 0; col < game.TableauColumns; col++ {
		if col == src {
			continue
		}
		if wholeColumn && len(gs.Tableau[col]) == 0 {
			continue
		}
		if gs.CanMoveToTableau(run, col) {
			return col, true
		}
	}
	return 0, false
}
