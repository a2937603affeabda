package hint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"klondike/game"
)

func card(s game.Suit, r int, faceUp bool) game.Card {
	c := game.NewCard(s, r)
	c.FaceUp = faceUp
	return c
}

func TestFindPriorities(t *testing.T) {
	t.Run("revealing run move beats a waste move", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[0] = []game.Card{
			card(game.Diamonds, 9, false),
			card(game.Hearts, 5, true),
		}
		gs.Tableau[1] = []game.Card{card(game.Spades, 6, true)}
		gs.Waste = []game.Card{card(game.Diamonds, 5, true)}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 0}, h.From)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 1}, h.To)
		require.Equal(t, 1, h.Cards)
		require.True(t, h.WillReveal)
	})

	t.Run("revealing foundation move for a lone face-up card", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[3] = []game.Card{
			card(game.Clubs, 10, false),
			card(game.Hearts, game.Ace, true),
		}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 3}, h.From)
		require.Equal(t, game.Location{Kind: game.FoundationPile, Index: 0}, h.To)
		require.True(t, h.WillReveal)
	})

	t.Run("whole run moves together when it reveals", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[0] = []game.Card{
			card(game.Diamonds, 9, false),
			card(game.Hearts, 5, true),
			card(game.Spades, 4, true),
		}
		gs.Tableau[2] = []game.Card{card(game.Clubs, 6, true)}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, 2, h.Cards, "the maximal face-up run is suggested")
		require.True(t, h.WillReveal)
	})

	t.Run("non-revealing foundation move is second tier", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[1] = []game.Card{card(game.Diamonds, game.Ace, true)}
		gs.Waste = []game.Card{card(game.Spades, 6, true)}
		gs.Tableau[4] = []game.Card{card(game.Hearts, 7, true)}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.FoundationPile, Index: 1}, h.To)
		require.False(t, h.WillReveal)
	})

	t.Run("waste move is third tier", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Waste = []game.Card{card(game.Spades, 6, true)}
		gs.Tableau[2] = []game.Card{card(game.Hearts, 7, true)}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.WastePile}, h.From)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 2}, h.To)
	})

	t.Run("plain tableau move is the last resort", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[0] = []game.Card{
			card(game.Hearts, 9, true),
			card(game.Spades, 8, true),
		}
		gs.Tableau[1] = []game.Card{card(game.Diamonds, 9, true)}

		h, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 0}, h.From)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 1}, h.To)
		require.Equal(t, 1, h.Cards, "only the top card moves in this tier")
		require.False(t, h.WillReveal)
	})
}

func TestFindEdgeCases(t *testing.T) {
	t.Run("no legal move reports no hint", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[0] = []game.Card{card(game.Hearts, 5, true)}
		gs.Tableau[1] = []game.Card{card(game.Diamonds, 9, true)}

		_, ok := Find(gs)
		require.False(t, ok)
	})

	t.Run("king pile is not shuffled between empty columns", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[2] = []game.Card{card(game.Spades, game.King, true)}

		_, ok := Find(gs)
		require.False(t, ok)
	})

	t.Run("king run covering a face-down card still moves", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[2] = []game.Card{
			card(game.Diamonds, 4, false),
			card(game.Spades, game.King, true),
		}

		h, ok := Find(gs)
		require.True(t, ok)
		require.Equal(t, game.Location{Kind: game.TableauPile, Index: 0}, h.To)
		require.True(t, h.WillReveal)
	})

	t.Run("nil state", func(t *testing.T) {
		_, ok := Find(nil)
		require.False(t, ok)
	})

	t.Run("search never mutates the position", func(t *testing.T) {
		gs := &game.GameState{}
		gs.Tableau[0] = []game.Card{
			card(game.Diamonds, 9, false),
			card(game.Hearts, 5, true),
		}
		gs.Tableau[1] = []game.Card{card(game.Spades, 6, true)}
		before := gs.Copy()

		_, ok := Find(gs)

		require.True(t, ok)
		require.Equal(t, before, gs)
	})
}
