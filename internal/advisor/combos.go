package advisor

import "github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"

// Bounds on the combinatorial search. Single-card matches are always
// considered; multi-card combinations (up to 3 cards) are only explored on
// small tables so the search stays cheap enough to run on every selection
// change without debouncing.
const (
	maxCombinationSize = 3
	maxTableForCombos  = 8
)

// captureSelections returns the table-card selections whose build values sum
// to target: every matching single card, plus 2- and 3-card combinations when
// the table is small enough.
func captureSelections(table []domain.Card, target int) [][]domain.Card {
	var out [][]domain.Card
	for _, c := range table {
		if domain.BuildValue(c.Rank) == target {
			out = append(out, []domain.Card{c})
		}
	}
	out = append(out, multiCardSelections(table, target)...)
	return out
}

// buildSelections returns the table-card selections that would complete a
// build, i.e. sum to the remainder the played card leaves toward the build
// value. Same bounds as capture selections.
func buildSelections(table []domain.Card, remainder int) [][]domain.Card {
	if remainder < 1 {
		return nil
	}
	var out [][]domain.Card
	for _, c := range table {
		if domain.BuildValue(c.Rank) == remainder {
			out = append(out, []domain.Card{c})
		}
	}
	out = append(out, multiCardSelections(table, remainder)...)
	return out
}

func multiCardSelections(table []domain.Card, target int) [][]domain.Card {
	if len(table) > maxTableForCombos {
		return nil
	}
	var out [][]domain.Card
	for i := 0; i < len(table)-1; i++ {
		vi := domain.BuildValue(table[i].Rank)
		for j := i + 1; j < len(table); j++ {
			vj := domain.BuildValue(table[j].Rank)
			if vi+vj == target {
				out = append(out, []domain.Card{table[i], table[j]})
			}
			for k := j + 1; k < len(table); k++ {
				if vi+vj+domain.BuildValue(table[k].Rank) == target {
					out = append(out, []domain.Card{table[i], table[j], table[k]})
				}
			}
		}
	}
	return out
}
