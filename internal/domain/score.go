package domain

// Round scoring point values. The full pool across both players is 11:
// 4 aces + 2 of spades + 10 of diamonds (2) + card majority (2) + spade
// majority (2). Majority bonuses are withheld entirely on a tie.
const (
	PointsPerAce       = 1
	PointsTwoOfSpades  = 1
	PointsTenOfDiamond = 2
	PointsMostCards    = 2
	PointsMostSpades   = 2
)

// ScoreBreakdown itemizes one player's points at round end.
type ScoreBreakdown struct {
	Aces          int  `json:"aces"`
	TwoOfSpades   bool `json:"two_of_spades"`
	TenOfDiamonds bool `json:"ten_of_diamonds"`
	CardCount     int  `json:"card_count"`
	SpadeCount    int  `json:"spade_count"`
	MostCards     bool `json:"most_cards"`
	MostSpades    bool `json:"most_spades"`
	Total         int  `json:"total"`
}

// ComputeRoundScore derives both players' score breakdowns from their captured
// piles. Scoring reads card identity only (an ace is 1 point even though its
// build value is 14); it never consults BuildValue.
func ComputeRoundScore(p1Captured, p2Captured []Card) (ScoreBreakdown, ScoreBreakdown) {
	b1 := tallyPile(p1Captured)
	b2 := tallyPile(p2Captured)

	if b1.CardCount > b2.CardCount {
		b1.MostCards = true
	} else if b2.CardCount > b1.CardCount {
		b2.MostCards = true
	}
	if b1.SpadeCount > b2.SpadeCount {
		b1.MostSpades = true
	} else if b2.SpadeCount > b1.SpadeCount {
		b2.MostSpades = true
	}

	b1.Total = total(b1)
	b2.Total = total(b2)
	return b1, b2
}

func tallyPile(pile []Card) ScoreBreakdown {
	b := ScoreBreakdown{CardCount: len(pile)}
	for _, c := range pile {
		if IsAce(c) {
			b.Aces++
		}
		if IsTwoOfSpades(c) {
			b.TwoOfSpades = true
		}
		if IsTenOfDiamonds(c) {
			b.TenOfDiamonds = true
		}
		if c.Suit == Spades {
			b.SpadeCount++
		}
	}
	return b
}

func total(b ScoreBreakdown) int {
	t := b.Aces * PointsPerAce
	if b.TwoOfSpades {
		t += PointsTwoOfSpades
	}
	if b.TenOfDiamonds {
		t += PointsTenOfDiamond
	}
	if b.MostCards {
		t += PointsMostCards
	}
	if b.MostSpades {
		t += PointsMostSpades
	}
	return t
}
