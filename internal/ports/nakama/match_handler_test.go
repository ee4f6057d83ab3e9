package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

func TestMatchInitState(t *testing.T) {
	mh := &matchHandler{}

	state, tickRate, label := mh.MatchInit(context.Background(), noopLogger{}, nil, nil, nil)
	ms, ok := state.(*MatchState)
	if !ok {
		t.Fatalf("state type = %T, want *MatchState", state)
	}

	// The tick counter mirrors MatchLoop's tick argument and starts at zero.
	if ms.Tick != 0 {
		t.Errorf("initial tick = %d, want 0", ms.Tick)
	}
	if ms.OwnerSeat != -1 {
		t.Errorf("owner seat = %d, want -1", ms.OwnerSeat)
	}
	if ms.phase() != string(domain.PhaseLobby) {
		t.Errorf("phase = %q, want lobby", ms.phase())
	}
	if tickRate != 1 {
		t.Errorf("tick rate = %d, want 1", tickRate)
	}

	var decoded Label
	if err := json.Unmarshal([]byte(label), &decoded); err != nil {
		t.Fatalf("label unmarshal error: %v", err)
	}
	if !decoded.Open || decoded.Game != "cassino" || decoded.Phase != string(domain.PhaseLobby) {
		t.Errorf("label = %+v, want an open cassino lobby", decoded)
	}
}

func TestSeatHelpers(t *testing.T) {
	ms := &MatchState{Seats: [2]string{"u1", ""}}

	if got := ms.openSeatCount(); got != 1 {
		t.Errorf("open seats = %d, want 1", got)
	}
	if got := ms.occupiedSeatCount(); got != 1 {
		t.Errorf("occupied seats = %d, want 1", got)
	}
	if got := ms.seatOf("u1"); got != 0 {
		t.Errorf("seatOf(u1) = %d, want 0", got)
	}
	if got := ms.seatOf("stranger"); got != -1 {
		t.Errorf("seatOf(stranger) = %d, want -1", got)
	}
}

func TestHumanPlayerCountIgnoresBots(t *testing.T) {
	ms := &MatchState{Seats: [2]string{"u1", "bot_rosa"}}
	if got := ms.humanPlayerCount(); got != 1 {
		t.Errorf("human count = %d, want 1", got)
	}

	ms.Seats = [2]string{"bot_rosa", "bot_marco"}
	if got := ms.humanPlayerCount(); got != 0 {
		t.Errorf("human count = %d, want 0", got)
	}
}

func TestFindFirstHumanSeat(t *testing.T) {
	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{"human in first seat", []string{"u1", "bot_rosa"}, 0},
		{"human in second seat", []string{"bot_rosa", "u1"}, 1},
		{"bots only", []string{"bot_rosa", "bot_marco"}, -1},
		{"empty seats", []string{"", ""}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findFirstHumanSeat(tt.seats); got != tt.want {
				t.Errorf("findFirstHumanSeat(%v) = %d, want %d", tt.seats, got, tt.want)
			}
		})
	}
}

func TestPhaseReflectsGame(t *testing.T) {
	ms := &MatchState{}
	if got := ms.phase(); got != string(domain.PhaseLobby) {
		t.Errorf("phase = %q, want lobby", got)
	}

	ms.Game = &domain.Game{Phase: domain.PhasePlaying}
	if got := ms.phase(); got != string(domain.PhasePlaying) {
		t.Errorf("phase = %q, want playing", got)
	}
}

func TestLabelJSONShape(t *testing.T) {
	data, err := json.Marshal(Label{Open: true, Game: "cassino", Phase: "lobby"})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	// The quick-match query filters on these exact keys.
	for _, key := range []string{"open", "game", "phase"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("label JSON missing %q key", key)
		}
	}
}

func TestIsTied(t *testing.T) {
	scores := map[string]domain.ScoreBreakdown{
		"u1": {Total: 6},
		"u2": {Total: 5},
	}
	if isTied(scores, 6) {
		t.Error("distinct best score should not report a tie")
	}

	scores["u2"] = domain.ScoreBreakdown{Total: 6}
	if !isTied(scores, 6) {
		t.Error("shared best score should report a tie")
	}
}
