package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testState(seed uint64) *GameState {
	return NewGameState(rand.New(rand.NewSource(seed)))
}

// card builds a test card with an explicit orientation.
func card(s Suit, r int, faceUp bool) Card {
	c := NewCard(s, r)
	c.FaceUp = faceUp
	return c
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, DeckSize)
	seen := map[int]bool{}
	for _, c := range deck {
		require.False(t, c.FaceUp, "deck cards start face-down")
		require.False(t, seen[c.ID], "card ids must be unique")
		seen[c.ID] = true
	}
}

func TestNewGameStateDeal(t *testing.T) {
	gs := testState(42)

	require.Len(t, gs.Stock, 24, "28 dealt cards leave 24 in stock")
	require.Empty(t, gs.Waste)
	for i, foundation := range gs.Foundations {
		require.Empty(t, foundation, "foundation %d starts empty", i)
	}
	for col := 0; col < TableauColumns; col++ {
		column := gs.Tableau[col]
		require.Len(t, column, col+1, "column %d receives %d cards", col, col+1)
		for i, c := range column {
			require.Equal(t, i == col, c.FaceUp,
				"only the last card dealt into column %d is face-up", col)
		}
	}
	for _, c := range gs.Stock {
		require.False(t, c.FaceUp, "stock cards are face-down")
	}
	require.Zero(t, gs.MoveCount)
	require.Zero(t, gs.Score)
	require.NoError(t, gs.CheckIntegrity())
}

func TestNewGameStateSeeding(t *testing.T) {
	a := testState(7)
	b := testState(7)
	c := testState(8)

	require.Equal(t, a, b, "identical seeds deal identical games")
	require.NotEqual(t, a, c, "different seeds deal different games")
}

func TestCopyIndependence(t *testing.T) {
	gs := testState(1)
	gs.DrawFromStock()

	snapshot := gs.Copy()
	require.Equal(t, gs, snapshot)

	// Mutating the original must never show through the copy.
	gs.Waste[0].FaceUp = false
	gs.Tableau[6][6].Rank = Ace
	gs.Stock = gs.Stock[:5]
	gs.Score = 999

	require.NotEqual(t, gs, snapshot)
	require.True(t, snapshot.Waste[0].FaceUp)
	require.Len(t, snapshot.Stock, 21)
	require.Zero(t, snapshot.Score)
}

func TestCopyPreservesNilPiles(t *testing.T) {
	// A fresh deal has nil waste and foundations; copying must not turn
	// them into empty non-nil slices, or the copy stops being deep-equal
	// to its source.
	gs := testState(1)
	snapshot := gs.Copy()

	require.Nil(t, snapshot.Waste)
	for i := range snapshot.Foundations {
		require.Nil(t, snapshot.Foundations[i])
	}
	require.Equal(t, gs, snapshot)

	empty := &GameState{}
	require.Equal(t, empty, empty.Copy())
}

func TestFaceUpRun(t *testing.T) {
	gs := &GameState{}
	gs.Tableau[2] = []Card{
		card(Spades, 9, false),
		card(Hearts, 7, true),
		card(Clubs, 6, true),
		card(Diamonds, 5, true),
	}

	run := gs.FaceUpRun(2)
	require.Len(t, run, 3)
	require.Equal(t, 7, run[0].Rank, "run starts at the first face-up card")

	require.Empty(t, gs.FaceUpRun(0), "empty column has no run")
	require.Nil(t, gs.FaceUpRun(-1))
	require.Nil(t, gs.FaceUpRun(TableauColumns))
}

func TestCheckIntegrity(t *testing.T) {
	t.Run("fresh deal passes", func(t *testing.T) {
		require.NoError(t, testState(3).CheckIntegrity())
	})

	t.Run("duplicate card detected", func(t *testing.T) {
		gs := testState(3)
		gs.Waste = append(gs.Waste, gs.Stock[0])

		require.Error(t, gs.CheckIntegrity())
	})

	t.Run("missing card detected", func(t *testing.T) {
		gs := testState(3)
		gs.Stock = gs.Stock[:len(gs.Stock)-1]

		require.Error(t, gs.CheckIntegrity())
	})

	t.Run("face-down card above face-up detected", func(t *testing.T) {
		gs := testState(3)
		gs.Tableau[4][1].FaceUp = true
		gs.Tableau[4][2].FaceUp = false

		require.Error(t, gs.CheckIntegrity())
	})
}
