package game

import "klondike/utils"

// Scoring deltas and the draw-three rule.
const (
	DrawCount         = 3
	FoundationScore   = 10
	RevealScore       = 5
	WasteScore        = 5
	FoundationPenalty = -15
)

// DrawFromStock moves up to DrawCount cards from the top of stock to the top
// of waste, turning each face-up. When stock is empty and waste is not, the
// entire waste is recycled back into stock face-down, in reverse, so a full
// cycle reproduces the original draw order. When both piles are empty nothing
// happens: no move is counted and the score is untouched. Returns whether a
// state change occurred.
func (gs *GameState) DrawFromStock() bool {
	if len(gs.Stock) == 0 && len(gs.Waste) == 0 {
		return false
	}
	gs.LastReveal = false

	if len(gs.Stock) == 0 {
		for i := len(gs.Waste) - 1; i >= 0; i-- {
			card := gs.Waste[i]
			card.FaceUp = false
			gs.Stock = append(gs.Stock, card)
		}
		gs.Waste = nil
		gs.MoveCount++
		return true
	}

	n := min(DrawCount, len(gs.Stock))
	for i := 0; i < n; i++ {
		card := gs.Stock[len(gs.Stock)-1]
		gs.Stock = gs.Stock[:len(gs.Stock)-1]
		card.FaceUp = true
		gs.Waste = append(gs.Waste, card)
	}
	gs.MoveCount++
	return true
}

// FoundationFor returns the foundation index the card belongs to and whether
// placing it there is legal right now. Foundations are fixed per suit, never
// first-fit: an ace starts its suit's pile, everything else needs top+1.
func (gs *GameState) FoundationFor(c Card) (int, bool) {
	idx := int(c.Suit)
	foundation := gs.Foundations[idx]
	if len(foundation) == 0 {
		return idx, c.Rank == Ace
	}
	return idx, c.Rank == foundation[len(foundation)-1].Rank+1
}

// CanMoveToTableau reports whether the run (bottommost card first) may land on
// the given column: a king-led run onto an empty column, otherwise opposite
// color and rank one below the column's face-up top card.
func (gs *GameState) CanMoveToTableau(run []Card, col int) bool {
	if len(run) == 0 || col < 0 || col >= TableauColumns {
		return false
	}
	first := run[0]
	dest := gs.Tableau[col]
	if len(dest) == 0 {
		return first.Rank == King
	}
	top := dest[len(dest)-1]
	return top.FaceUp &&
		top.Suit.Color() != first.Suit.Color() &&
		first.Rank == top.Rank-1
}

// revealTop flips the new top of a tableau column face-up after a removal and
// reports whether a flip happened.
func (gs *GameState) revealTop(col int) bool {
	column := gs.Tableau[col]
	if len(column) == 0 || column[len(column)-1].FaceUp {
		return false
	}
	gs.Tableau[col][len(column)-1].FaceUp = true
	return true
}

// MoveCardToFoundation executes a single-card move from the top of waste or a
// tableau column onto the requested foundation. It fails without any state
// change unless FoundationFor agrees with the requested index and the card is
// actually the source's top card. Scoring: +10 for the move, +5 if the
// removal revealed a tableau card.
func (gs *GameState) MoveCardToFoundation(from Location, foundation int, c Card) bool {
	if foundation < 0 || foundation >= NumSuits {
		return false
	}
	want, ok := gs.FoundationFor(c)
	if !ok || want != foundation {
		return false
	}

	revealed := false
	switch from.Kind {
	case WastePile:
		if len(gs.Waste) == 0 || gs.Waste[len(gs.Waste)-1].ID != c.ID {
			return false
		}
		gs.Waste = gs.Waste[:len(gs.Waste)-1]
	case TableauPile:
		if from.Index < 0 || from.Index >= TableauColumns {
			return false
		}
		column := gs.Tableau[from.Index]
		if len(column) == 0 {
			return false
		}
		top := column[len(column)-1]
		if top.ID != c.ID || !top.FaceUp {
			return false
		}
		gs.Tableau[from.Index] = column[:len(column)-1]
		revealed = gs.revealTop(from.Index)
	default:
		return false
	}

	card := c
	card.FaceUp = true
	gs.Foundations[foundation] = append(gs.Foundations[foundation], card)

	gs.Score += FoundationScore
	if revealed {
		gs.Score += RevealScore
	}
	gs.LastReveal = revealed
	gs.MoveCount++
	return true
}

// MoveCardsToTableau executes a run move onto a tableau column. The run must
// be the contiguous face-up suffix of its source: exactly one card from waste
// or a foundation top, or the topmost len(run) face-up cards of another
// column. Scoring: +5 from waste, -15 from a foundation, +5 on reveal.
func (gs *GameState) MoveCardsToTableau(from Location, col int, run []Card) bool {
	if !gs.CanMoveToTableau(run, col) {
		return false
	}

	revealed := false
	scoreDelta := 0
	var moved []Card

	switch from.Kind {
	case WastePile:
		if len(run) != 1 || len(gs.Waste) == 0 || gs.Waste[len(gs.Waste)-1].ID != run[0].ID {
			return false
		}
		moved = []Card{gs.Waste[len(gs.Waste)-1]}
		gs.Waste = gs.Waste[:len(gs.Waste)-1]
		scoreDelta = WasteScore
	case FoundationPile:
		if len(run) != 1 || from.Index < 0 || from.Index >= NumSuits {
			return false
		}
		foundation := gs.Foundations[from.Index]
		if len(foundation) == 0 || foundation[len(foundation)-1].ID != run[0].ID {
			return false
		}
		moved = []Card{foundation[len(foundation)-1]}
		gs.Foundations[from.Index] = foundation[:len(foundation)-1]
		scoreDelta = FoundationPenalty
	case TableauPile:
		if from.Index < 0 || from.Index >= TableauColumns || from.Index == col {
			return false
		}
		column := gs.Tableau[from.Index]
		n := len(run)
		if len(column) < n {
			return false
		}
		suffix := column[len(column)-n:]
		for i, c := range suffix {
			if !c.FaceUp || c.ID != run[i].ID {
				return false
			}
		}
		moved = make([]Card, n)
		copy(moved, suffix)
		gs.Tableau[from.Index] = column[:len(column)-n]
		revealed = gs.revealTop(from.Index)
	default:
		return false
	}

	gs.Tableau[col] = append(gs.Tableau[col], moved...)

	gs.Score += scoreDelta
	if revealed {
		gs.Score += RevealScore
	}
	gs.LastReveal = revealed
	gs.MoveCount++
	return true
}

// TryAutoMoveFromWaste attempts the best move for the waste's top card: its
// foundation first, then the first tableau column that accepts it. Returns
// false, with no state change, when no move is legal.
func (gs *GameState) TryAutoMoveFromWaste() bool {
	if len(gs.Waste) == 0 {
		return false
	}
	card := gs.Waste[len(gs.Waste)-1]
	from := Location{Kind: WastePile}

	if idx, ok := gs.FoundationFor(card); ok {
		return gs.MoveCardToFoundation(from, idx, card)
	}
	for col := 0; col < TableauColumns; col++ {
		if gs.CanMoveToTableau([]Card{card}, col) {
			return gs.MoveCardsToTableau(from, col, []Card{card})
		}
	}
	return false
}

// TryAutoMoveFromTableau attempts the best move for a column: its top card to
// the foundation first, then the column's whole face-up run to the first
// other column that accepts it.
func (gs *GameState) TryAutoMoveFromTableau(col int) bool {
	if col < 0 || col >= TableauColumns || len(gs.Tableau[col]) == 0 {
		return false
	}
	column := gs.Tableau[col]
	top := column[len(column)-1]
	from := Location{Kind: TableauPile, Index: col}

	if top.FaceUp {
		if idx, ok := gs.FoundationFor(top); ok {
			return gs.MoveCardToFoundation(from, idx, top)
		}
	}

	run := gs.FaceUpRun(col)
	if len(run) == 0 {
		return false
	}
	for dest := 0; dest < TableauColumns; dest++ {
		if dest == col {
			continue
		}
		if gs.CanMoveToTableau(run, dest) {
			return gs.MoveCardsToTableau(from, dest, run)
		}
	}
	return false
}

// TryMoveFoundationToTableau moves a foundation's top card back onto the
// first tableau column that accepts it, at the usual -15 penalty.
func (gs *GameState) TryMoveFoundationToTableau(foundation int) bool {
	if foundation < 0 || foundation >= NumSuits || len(gs.Foundations[foundation]) == 0 {
		return false
	}
	card := gs.Foundations[foundation][len(gs.Foundations[foundation])-1]
	from := Location{Kind: FoundationPile, Index: foundation}

	for col := 0; col < TableauColumns; col++ {
		if gs.CanMoveToTableau([]Card{card}, col) {
			return gs.MoveCardsToTableau(from, col, []Card{card})
		}
	}
	return false
}

// RunFromCard returns the face-up suffix of a column starting at the card
// with the given id, or false when the card is not part of the face-up run.
func (gs *GameState) RunFromCard(col int, cardID int) ([]Card, bool) {
	run := gs.FaceUpRun(col)
	i := utils.FindIndexFunc(run, func(c Card) bool { return c.ID == cardID })
	if i < 0 {
		return nil, false
	}
	return run[i:], true
}

// RunForDrop resolves a dropped card-id list against the source pile. The ids
// must match the pile's topmost cards bottom-to-top; waste and foundation
// sources carry exactly one card.
func (gs *GameState) RunForDrop(from Location, cardIDs []int) ([]Card, bool) {
	pile := gs.pile(from)
	if pile == nil || len(cardIDs) == 0 || len(*pile) < len(cardIDs) {
		return nil, false
	}
	if from.Kind != TableauPile && len(cardIDs) != 1 {
		return nil, false
	}
	run := (*pile)[len(*pile)-len(cardIDs):]
	for i, c := range run {
		if c.ID != cardIDs[i] {
			return nil, false
		}
	}
	return run, true
}

// IsWon reports whether all four foundations are complete.
func (gs *GameState) IsWon() bool {
	total := 0
	for _, foundation := range gs.Foundations {
		total += len(foundation)
	}
	return total == DeckSize
}
