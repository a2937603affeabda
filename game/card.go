package game

import "fmt"

type Suit int

const (
	Hearts   Suit = iota // 0
	Diamonds             // 1
	Clubs                // 2
	Spades               // 3
)

type Color int

const (
	Red Color = iota
	Black
)

// Color returns the color class used by tableau building rules.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	}
	return "unknown"
}

const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card is one of the 52 deck cards. Identity (Suit, Rank, ID) never changes;
// FaceUp is the only field mutated in place, and only by a reveal.
type Card struct {
	Suit   Suit
	Rank   int // 1..13
	FaceUp bool
	ID     int
}

// NewCard builds a face-down card whose ID is derived from (suit, rank), so
// identity is stable across deals and deep copies.
func NewCard(suit Suit, rank int) Card {
	return Card{
		Suit: suit,
		Rank: rank,
		ID:   int(suit)*NumRanks + rank - 1,
	}
}

var rankNames = []string{"ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king"}

// String representation for debugging
func (c Card) String() string {
	if c.Rank < Ace || c.Rank > King {
		return fmt.Sprintf("invalid card (rank %d)", c.Rank)
	}
	return fmt.Sprintf("%s of %s", rankNames[c.Rank-1], c.Suit)
}
