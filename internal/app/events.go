package app

import "github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"

// EventKind identifies emitted app events for dispatch to clients.
type EventKind string

const (
	EventRoundStarted  EventKind = "round_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventCardsCaptured EventKind = "cards_captured"
	EventBuildCreated  EventKind = "build_created"
	EventCardTrailed   EventKind = "card_trailed"
	EventRoundEnded    EventKind = "round_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type RoundStartedPayload struct {
	Round           int           `json:"round"`
	Table           []domain.Card `json:"table"`
	FirstTurnUserID string        `json:"first_turn_user_id"`
}

type HandDealtPayload struct {
	UserID string        `json:"user_id"`
	Hand   []domain.Card `json:"hand"`
}

type CardsCapturedPayload struct {
	UserID         string        `json:"user_id"`
	HandCard       domain.Card   `json:"hand_card"`
	Captured       []domain.Card `json:"captured"`
	NextTurnUserID string        `json:"next_turn_user_id"`
}

type BuildCreatedPayload struct {
	UserID         string       `json:"user_id"`
	Build          domain.Build `json:"build"`
	NextTurnUserID string       `json:"next_turn_user_id"`
}

type CardTrailedPayload struct {
	UserID         string      `json:"user_id"`
	Card           domain.Card `json:"card"`
	NextTurnUserID string      `json:"next_turn_user_id"`
}

type RoundEndedPayload struct {
	// Scores is keyed by user ID.
	Scores map[string]domain.ScoreBreakdown `json:"scores"`
	// Leftover holds the table and build cards nobody captured; they count
	// toward no pile.
	Leftover []domain.Card `json:"leftover"`
}
