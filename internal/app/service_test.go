package app

import (
	"math/rand"
	"testing"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"
)

func TestStartRoundDealsHandsAndTable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	svc := NewService(rng)

	game, evs, err := svc.StartRound([]string{"u1", "u2"})
	if err != nil {
		t.Fatalf("start round error: %v", err)
	}
	if game.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", game.Phase)
	}
	if game.CurrentTurn != "u1" {
		t.Errorf("first turn = %s, want u1", game.CurrentTurn)
	}

	for _, uid := range []string{"u1", "u2"} {
		if got := len(game.Players[uid].Hand); got != HandSize {
			t.Errorf("%s hand size = %d, want %d", uid, got, HandSize)
		}
	}
	if len(game.Table) != TableDealSize {
		t.Errorf("table size = %d, want %d", len(game.Table), TableDealSize)
	}
	if len(game.Deck) != 52-2*HandSize-TableDealSize {
		t.Errorf("deck size = %d, want 40", len(game.Deck))
	}
	if got := domain.CountCards(game); got != 52 {
		t.Errorf("card count = %d, want 52", got)
	}

	handEvents := 0
	for _, ev := range evs {
		if ev.Kind == EventHandDealt {
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.UserID {
				t.Errorf("hand dealt event not private to %s", payload.UserID)
			}
		}
	}
	if handEvents != 2 {
		t.Fatalf("hand events = %d, want 2", handEvents)
	}
}

func TestStartRoundRequiresTwoPlayers(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	if _, _, err := svc.StartRound([]string{"u1"}); err != ErrWrongPlayerCount {
		t.Fatalf("err = %v, want %v", err, ErrWrongPlayerCount)
	}
	if _, _, err := svc.StartRound([]string{"u1", ""}); err != ErrWrongPlayerCount {
		t.Fatalf("err = %v, want %v", err, ErrWrongPlayerCount)
	}
}

func scriptedGame(hand1, hand2, table, deck []domain.Card) *domain.Game {
	return &domain.Game{
		Phase: domain.PhasePlaying,
		Players: map[string]*domain.Player{
			"u1": {UserID: "u1", Seat: 0, Hand: hand1},
			"u2": {UserID: "u2", Seat: 1, Hand: hand2},
		},
		Seats:       [2]string{"u1", "u2"},
		Table:       table,
		Deck:        deck,
		CurrentTurn: "u1",
		Round:       1,
	}
}

func TestTrailAdvancesTurn(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	six := domain.NewCard(domain.Clubs, 6)
	game := scriptedGame(
		[]domain.Card{six, domain.NewCard(domain.Hearts, 3)},
		[]domain.Card{domain.NewCard(domain.Spades, 9)},
		nil,
		nil,
	)

	evs, err := svc.ExecuteTrail(game, "u1", six.ID)
	if err != nil {
		t.Fatalf("trail error: %v", err)
	}
	if game.CurrentTurn != "u2" {
		t.Errorf("turn = %s, want u2", game.CurrentTurn)
	}
	if len(evs) != 1 || evs[0].Kind != EventCardTrailed {
		t.Fatalf("events = %v, want one card trailed event", evs)
	}
	payload := evs[0].Payload.(CardTrailedPayload)
	if payload.NextTurnUserID != "u2" {
		t.Errorf("next turn in payload = %s, want u2", payload.NextTurnUserID)
	}
}

func TestRedealWhenBothHandsEmpty(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	deck := domain.NewDeck()
	c1 := domain.NewCard(domain.Clubs, 6)
	c2 := domain.NewCard(domain.Hearts, 9)
	game := scriptedGame([]domain.Card{c1}, []domain.Card{c2}, nil, deck[:10])

	if _, err := svc.ExecuteTrail(game, "u1", c1.ID); err != nil {
		t.Fatalf("trail error: %v", err)
	}
	evs, err := svc.ExecuteTrail(game, "u2", c2.ID)
	if err != nil {
		t.Fatalf("trail error: %v", err)
	}

	redeals := 0
	for _, ev := range evs {
		if ev.Kind == EventHandDealt {
			redeals++
		}
	}
	if redeals != 2 {
		t.Fatalf("redeal events = %d, want 2", redeals)
	}
	if len(game.Players["u1"].Hand) != HandSize || len(game.Players["u2"].Hand) != HandSize {
		t.Error("hands not refilled to full size")
	}
	if len(game.Deck) != 10-2*HandSize {
		t.Errorf("deck size = %d, want 2", len(game.Deck))
	}
	if game.Phase != domain.PhasePlaying {
		t.Errorf("phase = %s, want playing", game.Phase)
	}
}

func TestRoundEndsWhenDeckExhausted(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	ten := domain.NewCard(domain.Diamonds, 10)
	seven := domain.NewCard(domain.Spades, 7)
	three := domain.NewCard(domain.Clubs, 3)
	low := domain.NewCard(domain.Hearts, 4)
	game := scriptedGame([]domain.Card{ten}, []domain.Card{low}, []domain.Card{seven, three}, nil)

	if _, err := svc.ExecuteCapture(game, "u1", ten.ID, []string{seven.ID, three.ID}, nil); err != nil {
		t.Fatalf("capture error: %v", err)
	}
	evs, err := svc.ExecuteTrail(game, "u2", low.ID)
	if err != nil {
		t.Fatalf("trail error: %v", err)
	}

	if game.Phase != domain.PhaseEnded {
		t.Fatalf("phase = %s, want ended", game.Phase)
	}

	var ended *RoundEndedPayload
	for _, ev := range evs {
		if ev.Kind == EventRoundEnded {
			payload := ev.Payload.(RoundEndedPayload)
			ended = &payload
		}
	}
	if ended == nil {
		t.Fatal("expected round ended event")
	}

	// u1 captured 3 cards including 10D and 7S; u2 captured none and the
	// trailed 4H stays on the table as leftover.
	u1 := ended.Scores["u1"]
	if u1.Total != 6 { // 10D (2) + most cards (2) + most spades (2)
		t.Errorf("u1 total = %d, want 6", u1.Total)
	}
	if ended.Scores["u2"].Total != 0 {
		t.Errorf("u2 total = %d, want 0", ended.Scores["u2"].Total)
	}
	if len(ended.Leftover) != 1 || ended.Leftover[0].ID != low.ID {
		t.Errorf("leftover = %v, want [%v]", ended.Leftover, low)
	}
}

func TestOutOfTurnMoveRejected(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	nine := domain.NewCard(domain.Spades, 9)
	game := scriptedGame(
		[]domain.Card{domain.NewCard(domain.Clubs, 6)},
		[]domain.Card{nine},
		nil,
		domain.NewDeck()[:8],
	)

	_, err := svc.ExecuteTrail(game, "u2", nine.ID)
	if err != domain.ErrNotPlayersTurn {
		t.Fatalf("err = %v, want %v", err, domain.ErrNotPlayersTurn)
	}
	if game.CurrentTurn != "u1" {
		t.Error("turn advanced on rejected move")
	}
	if len(game.Players["u2"].Hand) != 1 {
		t.Error("hand mutated on rejected move")
	}
}

func TestMoveRejectedAfterRoundEnd(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	six := domain.NewCard(domain.Clubs, 6)
	game := scriptedGame([]domain.Card{six}, []domain.Card{domain.NewCard(domain.Hearts, 9)}, nil, nil)
	game.Phase = domain.PhaseEnded

	if _, err := svc.ExecuteTrail(game, "u1", six.ID); err != ErrNotPlaying {
		t.Fatalf("err = %v, want %v", err, ErrNotPlaying)
	}
}
