package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"
)

const (
	// PlayersPerMatch is fixed: Cassino here is strictly two-handed.
	PlayersPerMatch = 2
	// HandSize cards go to each player at the initial deal and every redeal.
	HandSize = 4
	// TableDealSize cards are turned face-up once, at the start of the round.
	TableDealSize = 4
)

var (
	ErrNotPlaying       = errors.New("match not in playing phase")
	ErrUnknownPlayer    = errors.New("player not found")
	ErrWrongPlayerCount = errors.New("exactly two players are required")
)

// Service contains Cassino use-cases operating on domain state. It owns no
// state of its own beyond the deal rng; turn serialization is the match
// handler's responsibility.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartRound shuffles a fresh deck, deals each player their opening hand and
// the table its face-up cards, and returns the new game plus the events to
// dispatch. playerIDs must hold exactly two user IDs in seat order; seat 0
// leads.
func (s *Service) StartRound(playerIDs []string) (*domain.Game, []Event, error) {
	if len(playerIDs) != PlayersPerMatch || playerIDs[0] == "" || playerIDs[1] == "" {
		return nil, nil, ErrWrongPlayerCount
	}

	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	game := &domain.Game{
		Phase:   domain.PhasePlaying,
		Players: make(map[string]*domain.Player, PlayersPerMatch),
		Seats:   [2]string{playerIDs[0], playerIDs[1]},
		Round:   1,
	}

	events := make([]Event, 0, PlayersPerMatch+1)
	for seat, userID := range playerIDs {
		pl := &domain.Player{
			UserID: userID,
			Seat:   seat,
			Hand:   append([]domain.Card{}, deck[:HandSize]...),
		}
		deck = deck[HandSize:]
		game.Players[userID] = pl

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: pl.Hand},
			Recipients: []string{userID},
		})
	}

	game.Table = append([]domain.Card{}, deck[:TableDealSize]...)
	game.Deck = deck[TableDealSize:]
	game.CurrentTurn = game.Seats[0]

	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Round:           game.Round,
			Table:           game.Table,
			FirstTurnUserID: game.CurrentTurn,
		},
	})
	return game, events, nil
}

// ExecuteCapture processes a capture action and emits resulting events.
func (s *Service) ExecuteCapture(game *domain.Game, userID, handCardID string, tableCardIDs, buildIDs []string) ([]Event, error) {
	pl, err := s.actingPlayer(game, userID)
	if err != nil {
		return nil, err
	}

	handCard, ok := domain.FindCardByID(pl.Hand, handCardID)
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	captured, err := domain.ExecuteCapture(game, userID, handCardID, tableCardIDs, buildIDs)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventCardsCaptured,
		Payload: CardsCapturedPayload{
			UserID:         userID,
			HandCard:       handCard,
			Captured:       captured,
			NextTurnUserID: game.Opponent(userID),
		},
	}}
	s.finishTurn(game, &events)
	return events, nil
}

// ExecuteBuild processes a build action and emits resulting events.
func (s *Service) ExecuteBuild(game *domain.Game, userID, handCardID string, tableCardIDs []string, value int) ([]Event, error) {
	if _, err := s.actingPlayer(game, userID); err != nil {
		return nil, err
	}

	build, err := domain.CreateBuild(game, userID, handCardID, tableCardIDs, value)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventBuildCreated,
		Payload: BuildCreatedPayload{
			UserID:         userID,
			Build:          build,
			NextTurnUserID: game.Opponent(userID),
		},
	}}
	s.finishTurn(game, &events)
	return events, nil
}

// ExecuteTrail processes a trail action and emits resulting events.
func (s *Service) ExecuteTrail(game *domain.Game, userID, handCardID string) ([]Event, error) {
	if _, err := s.actingPlayer(game, userID); err != nil {
		return nil, err
	}

	card, err := domain.ExecuteTrail(game, userID, handCardID)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventCardTrailed,
		Payload: CardTrailedPayload{
			UserID:         userID,
			Card:           card,
			NextTurnUserID: game.Opponent(userID),
		},
	}}
	s.finishTurn(game, &events)
	return events, nil
}

// actingPlayer guards the phase and resolves the player. The turn itself is
// re-validated inside the domain mutation so a rejected move never advances
// anything.
func (s *Service) actingPlayer(game *domain.Game, userID string) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[userID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return pl, nil
}

// finishTurn passes the turn to the opponent, redeals when both hands are
// empty, and ends the round once the deck is exhausted.
func (s *Service) finishTurn(game *domain.Game, events *[]Event) {
	game.CurrentTurn = game.Opponent(game.CurrentTurn)

	if handsRemaining(game) {
		return
	}

	if len(game.Deck) >= PlayersPerMatch*HandSize {
		for _, userID := range game.Seats {
			pl := game.Players[userID]
			pl.Hand = append([]domain.Card{}, game.Deck[:HandSize]...)
			game.Deck = game.Deck[HandSize:]

			*events = append(*events, Event{
				Kind:       EventHandDealt,
				Payload:    HandDealtPayload{UserID: userID, Hand: pl.Hand},
				Recipients: []string{userID},
			})
		}
		return
	}

	s.endRound(game, events)
}

func (s *Service) endRound(game *domain.Game, events *[]Event) {
	game.Phase = domain.PhaseEnded

	p1 := game.Players[game.Seats[0]]
	p2 := game.Players[game.Seats[1]]
	b1, b2 := domain.ComputeRoundScore(p1.Captured, p2.Captured)

	leftover := append([]domain.Card{}, game.Table...)
	for _, b := range game.Builds {
		leftover = append(leftover, b.Cards...)
	}

	*events = append(*events, Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Scores: map[string]domain.ScoreBreakdown{
				p1.UserID: b1,
				p2.UserID: b2,
			},
			Leftover: leftover,
		},
	})
}

func handsRemaining(game *domain.Game) bool {
	for _, pl := range game.Players {
		if len(pl.Hand) > 0 {
			return true
		}
	}
	return false
}
