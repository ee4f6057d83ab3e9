// Package advisor enumerates the legal moves for a hand and ranks them with a
// capture-oriented heuristic. It powers the optional hints feature and the
// lobby auto-fill bot; legality itself is governed solely by the domain
// validators, never by the scores produced here.
package advisor

import (
	"sort"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"
)

// ActionKind identifies the move category of a suggestion.
type ActionKind string

const (
	ActionCapture ActionKind = "capture"
	ActionBuild   ActionKind = "build"
	ActionTrail   ActionKind = "trail"
)

// Suggestion is one ranked candidate move, addressed by card/build IDs so a
// client can apply it directly.
type Suggestion struct {
	Action       ActionKind `json:"action"`
	HandCardID   string     `json:"hand_card_id"`
	TableCardIDs []string   `json:"table_card_ids,omitempty"`
	BuildIDs     []string   `json:"build_ids,omitempty"`
	BuildValue   int        `json:"build_value,omitempty"`
	Score        int        `json:"score"`
}

// Heuristic weights. The exact constants are one consistent tuning; the
// ordering they induce is what matters: captures of scoring cards first, then
// plain captures and builds, trailing last, with scoring cards held back.
const (
	perCapturedCard    = 10
	scoringCardBonus   = 20 // ace or 2 of spades
	tenOfDiamondsBonus = 30
	perCapturedSpade   = 5
	buildCaptureBonus  = 20 // per existing build taken off the table
	buildBase          = 15
	buildPerCard       = 2
	buildHighValue     = 5 // builds at value 10+ are harder to steal cheaply
	trailBase          = 10
	trailScoringCard   = 5 // lower baseline discourages giving away points

	// DefaultLimit is how many suggestions are surfaced as hints.
	DefaultLimit = 3
)

// Suggest enumerates every legal move for the player's current hand, scores
// each heuristically, and returns the top candidates in descending score
// order. It only reads game state. limit <= 0 selects DefaultLimit.
func Suggest(g *domain.Game, userID string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	pl, ok := g.Players[userID]
	if !ok {
		return nil
	}

	var candidates []Suggestion
	for _, handCard := range pl.Hand {
		candidates = append(candidates, captureCandidates(g, handCard)...)
		candidates = append(candidates, buildCandidates(g, pl, handCard)...)
		candidates = append(candidates, trailCandidate(handCard))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func captureCandidates(g *domain.Game, handCard domain.Card) []Suggestion {
	target := domain.BuildValue(handCard.Rank)
	var out []Suggestion

	for _, sel := range captureSelections(g.Table, target) {
		out = append(out, Suggestion{
			Action:       ActionCapture,
			HandCardID:   handCard.ID,
			TableCardIDs: cardIDs(sel),
			Score:        scoreCapture(handCard, sel, nil),
		})
	}

	for _, b := range g.Builds {
		if b.Value != target {
			continue
		}
		out = append(out, Suggestion{
			Action:     ActionCapture,
			HandCardID: handCard.ID,
			BuildIDs:   []string{b.ID},
			Score:      scoreCapture(handCard, nil, []domain.Build{b}),
		})
	}
	return out
}

func buildCandidates(g *domain.Game, pl *domain.Player, handCard domain.Card) []Suggestion {
	hv := domain.BuildValue(handCard.Rank)
	var out []Suggestion

	for value := domain.MinBuildValue; value <= domain.MaxBuildValue; value++ {
		if value == hv || !holdsCapturingCard(pl.Hand, handCard, value) {
			continue
		}
		for _, sel := range buildSelections(g.Table, value-hv) {
			if !domain.CanBuild(handCard, sel, value, pl.Hand) {
				continue
			}
			out = append(out, Suggestion{
				Action:       ActionBuild,
				HandCardID:   handCard.ID,
				TableCardIDs: cardIDs(sel),
				BuildValue:   value,
				Score:        scoreBuild(sel, value),
			})
		}
	}
	return out
}

func trailCandidate(handCard domain.Card) Suggestion {
	score := trailBase
	if isScoringCard(handCard) || domain.BuildValue(handCard.Rank) >= 10 {
		score = trailScoringCard
	}
	return Suggestion{Action: ActionTrail, HandCardID: handCard.ID, Score: score}
}

func scoreCapture(handCard domain.Card, tableCards []domain.Card, builds []domain.Build) int {
	captured := append([]domain.Card{handCard}, tableCards...)
	for _, b := range builds {
		captured = append(captured, b.Cards...)
	}

	score := perCapturedCard * len(captured)
	for _, c := range captured {
		if domain.IsAce(c) || domain.IsTwoOfSpades(c) {
			score += scoringCardBonus
		}
		if domain.IsTenOfDiamonds(c) {
			score += tenOfDiamondsBonus
		}
		if c.Suit == domain.Spades {
			score += perCapturedSpade
		}
	}
	score += buildCaptureBonus * len(builds)
	return score
}

func scoreBuild(tableCards []domain.Card, value int) int {
	score := buildBase + buildPerCard*(1+len(tableCards))
	if value >= 10 {
		score += buildHighValue
	}
	return score
}

func holdsCapturingCard(hand []domain.Card, played domain.Card, value int) bool {
	for _, c := range hand {
		if c.ID != played.ID && domain.BuildValue(c.Rank) == value {
			return true
		}
	}
	return false
}

func isScoringCard(c domain.Card) bool {
	return domain.IsAce(c) || domain.IsTwoOfSpades(c) || domain.IsTenOfDiamonds(c)
}

func cardIDs(cards []domain.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
