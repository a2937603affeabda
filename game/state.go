package game

import (
	"fmt"
	"slices"

	"golang.org/x/exp/rand"
)

const (
	NumSuits       = 4
	NumRanks       = 13
	DeckSize       = NumSuits * NumRanks
	TableauColumns = 7
)

// GameState represents the dynamic state of one deal. Every pile owns its
// cards; the top of a pile is the end of its slice. Moving cards re-slices
// the source and appends to the destination, so a card is never live in two
// piles at once.
type GameState struct {
	Stock       []Card
	Waste       []Card
	Foundations [NumSuits][]Card
	Tableau     [TableauColumns][]Card
	MoveCount   int
	Score       int
	LastReveal  bool // whether the last executed move flipped a tableau card (for delta)
}

// NewDeck returns all 52 cards face-down in suit/rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, NewCard(s, r))
		}
	}
	return deck
}

// NewGameState shuffles a fresh deck with rng and deals it: column i receives
// i+1 cards with only the last one face-up, the remaining 24 go to stock
// face-down. This is the only place randomness enters the engine.
func NewGameState(rng *rand.Rand) *GameState {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	gs := &GameState{}
	idx := 0
	for col := 0; col < TableauColumns; col++ {
		for n := 0; n <= col; n++ {
			card := deck[idx]
			idx++
			card.FaceUp = n == col
			gs.Tableau[col] = append(gs.Tableau[col], card)
		}
	}
	gs.Stock = append(gs.Stock, deck[idx:]...)
	return gs
}

// Copy returns a fully independent deep copy: fresh backing arrays for every
// pile, no shared mutable substructure with the receiver. Nil piles stay nil
// so a copy is deep-equal to its source.
func (gs GameState) Copy() *GameState {
	newGs := &GameState{
		Stock:      slices.Clone(gs.Stock),
		Waste:      slices.Clone(gs.Waste),
		MoveCount:  gs.MoveCount,
		Score:      gs.Score,
		LastReveal: gs.LastReveal,
	}

	for i, foundation := range gs.Foundations {
		newGs.Foundations[i] = slices.Clone(foundation)
	}

	for i, column := range gs.Tableau {
		newGs.Tableau[i] = slices.Clone(column)
	}

	return newGs
}

// pile resolves a locator to the owned slice, or nil for an invalid locator.
func (gs *GameState) pile(loc Location) *[]Card {
	switch loc.Kind {
	case StockPile:
		return &gs.Stock
	case WastePile:
		return &gs.Waste
	case FoundationPile:
		if loc.Index < 0 || loc.Index >= NumSuits {
			return nil
		}
		return &gs.Foundations[loc.Index]
	case TableauPile:
		if loc.Index < 0 || loc.Index >= TableauColumns {
			return nil
		}
		return &gs.Tableau[loc.Index]
	}
	return nil
}

// FaceUpRun returns the maximal face-up suffix of a tableau column. The
// returned slice aliases the column and must not be mutated by callers.
func (gs *GameState) FaceUpRun(col int) []Card {
	if col < 0 || col >= TableauColumns {
		return nil
	}
	column := gs.Tableau[col]
	start := len(column)
	for start > 0 && column[start-1].FaceUp {
		start--
	}
	return column[start:]
}

// CheckIntegrity validates the structural contract: the union of all piles is
// exactly one 52-card deck with unique ids, and face-up cards in every column
// form a contiguous suffix. Violations are programming errors, so callers
// should treat a non-nil result as fatal.
func (gs *GameState) CheckIntegrity() error {
	seen := make(map[int]bool, DeckSize)
	count := 0
	walk := func(name string, pile []Card) error {
		for _, c := range pile {
			if c.Rank < Ace || c.Rank > King {
				return fmt.Errorf("%s holds card with invalid rank %d", name, c.Rank)
			}
			if seen[c.ID] {
				return fmt.Errorf("%s holds duplicate card %v", name, c)
			}
			seen[c.ID] = true
			count++
		}
		return nil
	}

	if err := walk("stock", gs.Stock); err != nil {
		return err
	}
	if err := walk("waste", gs.Waste); err != nil {
		return err
	}
	for i, foundation := range gs.Foundations {
		if err := walk(fmt.Sprintf("foundation %d", i), foundation); err != nil {
			return err
		}
	}
	for i, column := range gs.Tableau {
		if err := walk(fmt.Sprintf("tableau %d", i), column); err != nil {
			return err
		}
	}
	if count != DeckSize {
		return fmt.Errorf("expected %d cards across all piles, found %d", DeckSize, count)
	}

	for i, column := range gs.Tableau {
		faceUpSeen := false
		for _, c := range column {
			if faceUpSeen && !c.FaceUp {
				return fmt.Errorf("tableau %d has a face-down card above a face-up card", i)
			}
			faceUpSeen = faceUpSeen || c.FaceUp
		}
	}

	return nil
}
