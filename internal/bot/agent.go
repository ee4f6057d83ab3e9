package bot

import (
	"errors"
	"strings"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/advisor"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"
)

const botIDPrefix = "bot_"

var ErrNoMove = errors.New("agent has no cards to play")

// Agent is an autonomous player that follows the move advisor's top
// suggestion. It fills the second seat so a solo player can start a match.
type Agent struct {
	ID   string
	Name string
}

// NewAgent constructs an agent for the given bot user ID.
func NewAgent(id string) *Agent {
	return &Agent{ID: id, Name: UsernameFor(id)}
}

// IsBot reports whether the given user ID belongs to a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

// Play returns the agent's chosen move for the current game state. Trailing
// is always enumerated by the advisor, so any non-empty hand yields a move.
func (a *Agent) Play(game *domain.Game) (advisor.Suggestion, error) {
	suggestions := advisor.Suggest(game, a.ID, 1)
	if len(suggestions) == 0 {
		return advisor.Suggestion{}, ErrNoMove
	}
	return suggestions[0], nil
}
