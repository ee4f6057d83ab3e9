package domain

import "testing"

func TestBuildValue(t *testing.T) {
	tests := []struct {
		name string
		rank Rank
		want int
	}{
		{"Ace is high", RankAce, 14},
		{"Two", 2, 2},
		{"Nine", 9, 9},
		{"Ten", 10, 10},
		{"Jack", RankJack, 11},
		{"Queen", RankQueen, 12},
		{"King", RankKing, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildValue(tt.rank); got != tt.want {
				t.Errorf("BuildValue(%d) = %d, want %d", tt.rank, got, tt.want)
			}
		})
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[string]bool, 52)
	suitCounts := make(map[Suit]int)
	for _, c := range deck {
		if seen[c.ID] {
			t.Fatalf("duplicate card ID %q", c.ID)
		}
		seen[c.ID] = true
		suitCounts[c.Suit]++
	}
	for _, s := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		if suitCounts[s] != 13 {
			t.Errorf("suit %s has %d cards, want 13", s, suitCounts[s])
		}
	}
}

// The scoring predicates must stay independent of build arithmetic: an ace
// builds as 14 but scores as a single point, and the 10 of diamonds is just a
// ten for capture sums.
func TestScoringPredicatesIndependentOfBuildValue(t *testing.T) {
	ace := NewCard(Hearts, RankAce)
	if !IsAce(ace) {
		t.Errorf("IsAce(%v) = false", ace)
	}
	if BuildValue(ace.Rank) != 14 {
		t.Errorf("BuildValue(ace) = %d, want 14", BuildValue(ace.Rank))
	}

	if !IsTenOfDiamonds(NewCard(Diamonds, 10)) {
		t.Error("10D should be the ten of diamonds")
	}
	if IsTenOfDiamonds(NewCard(Hearts, 10)) {
		t.Error("10H should not be the ten of diamonds")
	}
	if IsTenOfDiamonds(NewCard(Diamonds, 9)) {
		t.Error("9D should not be the ten of diamonds")
	}

	if !IsTwoOfSpades(NewCard(Spades, 2)) {
		t.Error("2S should be the two of spades")
	}
	if IsTwoOfSpades(NewCard(Clubs, 2)) {
		t.Error("2C should not be the two of spades")
	}
}
