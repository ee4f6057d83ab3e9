package bot

import (
	"testing"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/advisor"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"
)

func TestIsBot(t *testing.T) {
	if !IsBot("bot_rosa") {
		t.Error("bot_rosa should be a bot")
	}
	if IsBot("rosa") || IsBot("") {
		t.Error("plain user IDs are not bots")
	}
}

func TestIdentityFor(t *testing.T) {
	first := IdentityFor(0)
	if !IsBot(first.UserID) || first.Username == "" {
		t.Errorf("identity = %+v, want a named bot", first)
	}
	// Seats past the roster wrap around instead of failing.
	if IdentityFor(len(identities)).UserID != first.UserID {
		t.Error("identities should wrap by seat")
	}
}

func TestAgentPlaysTopSuggestion(t *testing.T) {
	agent := NewAgent("bot_rosa")
	ten := domain.NewCard(domain.Hearts, 10)
	tenTable := domain.NewCard(domain.Clubs, 10)

	game := &domain.Game{
		Phase: domain.PhasePlaying,
		Players: map[string]*domain.Player{
			"bot_rosa": {UserID: "bot_rosa", Seat: 0, Hand: []domain.Card{ten}},
			"u1":       {UserID: "u1", Seat: 1, Hand: []domain.Card{domain.NewCard(domain.Spades, 4)}},
		},
		Seats:       [2]string{"bot_rosa", "u1"},
		Table:       []domain.Card{tenTable},
		CurrentTurn: "bot_rosa",
	}

	move, err := agent.Play(game)
	if err != nil {
		t.Fatalf("play error: %v", err)
	}
	if move.Action != advisor.ActionCapture || move.HandCardID != ten.ID {
		t.Errorf("move = %+v, want capture with %s", move, ten.ID)
	}
}

func TestAgentWithEmptyHand(t *testing.T) {
	agent := NewAgent("bot_rosa")
	game := &domain.Game{
		Phase: domain.PhasePlaying,
		Players: map[string]*domain.Player{
			"bot_rosa": {UserID: "bot_rosa", Seat: 0},
			"u1":       {UserID: "u1", Seat: 1},
		},
		Seats:       [2]string{"bot_rosa", "u1"},
		CurrentTurn: "bot_rosa",
	}

	if _, err := agent.Play(game); err != ErrNoMove {
		t.Fatalf("err = %v, want %v", err, ErrNoMove)
	}
}
