package domain

import (
	"math/rand"
	"strconv"
)

// Suit is one of the four French suits.
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Rank is the card face: 1 = Ace, 2..10 numerals, 11 = Jack, 12 = Queen, 13 = King.
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Card is a single playing card. ID is unique within a 52-card deck and is the
// handle clients use to reference cards in move requests.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// NewCard constructs a card with its canonical ID (suit letter + rank symbol).
func NewCard(suit Suit, rank Rank) Card {
	return Card{ID: string(suit) + rankSymbol(rank), Suit: suit, Rank: rank}
}

func rankSymbol(r Rank) string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Build target values span 2 (lowest numeral) through 14 (ace high).
const (
	MinBuildValue = 2
	MaxBuildValue = 14
)

// BuildValue returns the card value used for all capture and build arithmetic.
// Aces are high (14), J/Q/K are 11/12/13, numerals count as themselves.
//
// This is NOT the scoring view of a card: round scoring counts an ace as a
// single point regardless of its build value. The two views must never be
// conflated; the scorer uses the identity predicates below instead.
func BuildValue(r Rank) int {
	if r == RankAce {
		return 14
	}
	return int(r)
}

// SumBuildValues totals the build values of the given cards.
func SumBuildValues(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += BuildValue(c.Rank)
	}
	return sum
}

// IsAce reports whether the card scores as an ace (1 point).
func IsAce(c Card) bool {
	return c.Rank == RankAce
}

// IsTwoOfSpades reports whether the card is the 1-point 2 of spades.
func IsTwoOfSpades(c Card) bool {
	return c.Suit == Spades && c.Rank == 2
}

// IsTenOfDiamonds reports whether the card is the 2-point 10 of diamonds.
func IsTenOfDiamonds(c Card) bool {
	return c.Suit == Diamonds && c.Rank == 10
}

// NewDeck returns the ordered 52-card deck.
func NewDeck() []Card {
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for r := Rank(1); r <= 13; r++ {
			deck = append(deck, NewCard(s, r))
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
