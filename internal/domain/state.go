package domain

import "strconv"

// Phase represents the lifecycle stage of a Cassino match.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active round state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a round concludes.
	PhaseEnded Phase = "ended"
)

// Build is a combined stack of cards pledged toward a future capture at a
// declared value. A build is destroyed only by being captured; its cards then
// move to the capturing player's pile. Owner records who created the build but
// does not restrict who may capture it.
type Build struct {
	ID    string `json:"id"`
	Cards []Card `json:"cards"`
	Value int    `json:"value"`
	Owner string `json:"owner"`
}

// Player holds the per-player state within a round.
type Player struct {
	UserID   string
	Seat     int // 0-based seat index
	Hand     []Card
	Captured []Card
}

// Game is the authoritative state for a single round of Cassino. Every card
// of the deck is in exactly one of: Deck (undealt), a hand, Table, a build's
// card list, or a captured pile.
type Game struct {
	Phase       Phase
	Players     map[string]*Player
	Seats       [2]string
	Deck        []Card // undealt cards
	Table       []Card
	Builds      []Build
	CurrentTurn string
	Round       int
	BuildSeq    int // counter for build IDs within the round
}

// PlayerBySeat returns the player occupying the given seat, or nil.
func (g *Game) PlayerBySeat(seat int) *Player {
	for _, p := range g.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// Opponent returns the other player's user ID, or "" if unknown.
func (g *Game) Opponent(userID string) string {
	for _, id := range g.Seats {
		if id != userID {
			return id
		}
	}
	return ""
}

// NextBuildID allocates the next build identifier for this round.
func (g *Game) NextBuildID() string {
	g.BuildSeq++
	return "b" + strconv.Itoa(g.BuildSeq)
}

// CountCards returns the total number of cards across every location. Used to
// verify that moves conserve the deck.
func CountCards(g *Game) int {
	n := len(g.Deck) + len(g.Table)
	for _, b := range g.Builds {
		n += len(b.Cards)
	}
	for _, p := range g.Players {
		n += len(p.Hand) + len(p.Captured)
	}
	return n
}

// FindCardByID returns the card with the given ID from the slice.
func FindCardByID(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveCardByID returns the slice without the card carrying the given ID.
func RemoveCardByID(cards []Card, id string) ([]Card, bool) {
	for i, c := range cards {
		if c.ID == id {
			out := make([]Card, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			out = append(out, cards[i+1:]...)
			return out, true
		}
	}
	return cards, false
}

// FindBuildByID returns the build with the given ID.
func FindBuildByID(builds []Build, id string) (Build, bool) {
	for _, b := range builds {
		if b.ID == id {
			return b, true
		}
	}
	return Build{}, false
}

// RemoveBuildByID returns the slice without the build carrying the given ID.
func RemoveBuildByID(builds []Build, id string) ([]Build, bool) {
	for i, b := range builds {
		if b.ID == id {
			out := make([]Build, 0, len(builds)-1)
			out = append(out, builds[:i]...)
			out = append(out, builds[i+1:]...)
			return out, true
		}
	}
	return builds, false
}
