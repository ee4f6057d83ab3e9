package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/advisor"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/app"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/app/profile"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/bot"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/config"
	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const gameConfigPath = "data/game_config.json"

// MatchState holds the authoritative runtime state for one Cassino table.
type MatchState struct {
	Seats     [2]string                   `json:"seats"` // user IDs, "" means empty
	OwnerSeat int                         `json:"owner_seat"`
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in lobby
	Profiles  *profile.Store              `json:"-"`
	Config    config.GameConfig           `json:"-"`

	BotsEnabled          bool                  `json:"bots_enabled"`
	Bots                 map[string]*bot.Agent `json:"-"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
}

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type captureRequest struct {
	HandCardID   string   `json:"hand_card_id"`
	TableCardIDs []string `json:"table_card_ids"`
	BuildIDs     []string `json:"build_ids"`
}

type buildRequest struct {
	HandCardID   string   `json:"hand_card_id"`
	TableCardIDs []string `json:"table_card_ids"`
	Value        int      `json:"value"`
}

type trailRequest struct {
	HandCardID string `json:"hand_card_id"`
}

type moveRejectedEvent struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type moveSuggestionsEvent struct {
	Suggestions []advisor.Suggestion `json:"suggestions"`
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) occupiedSeatCount() int {
	return len(ms.Seats) - ms.openSeatCount()
}

func (ms *MatchState) humanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) phase() string {
	if ms.Game == nil {
		return string(domain.PhaseLobby)
	}
	return string(ms.Game.Phase)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing Cassino match handler.")

	cfg, err := config.Load(gameConfigPath)
	if err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}

	state := &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		Profiles:  profile.NewStore(NewProfileStorageAdapter(nk)),
		Config:    cfg,
		Bots:      make(map[string]*bot.Agent),
	}

	// Environment overrides for bot behaviour.
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["cassino_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["cassino_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.Config.BotMinDelaySeconds = i
		}
	}
	if val, ok := env["cassino_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.Config.BotMaxDelaySeconds = i
		}
	}
	if val, ok := env["cassino_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.Config.BotAutoFillDelaySeconds = i
		}
	}

	labelBytes, _ := json.Marshal(Label{Open: true, Game: "cassino", Phase: state.phase()})
	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Rejoin is always allowed for a seated player.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	// Allow join if there is an empty seat OR a bot to replace pre-game.
	if matchState.openSeatCount() == 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match_full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		matchState.Presences[uid] = p

		if matchState.seatOf(uid) >= 0 {
			continue // rejoin, seat unchanged
		}

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = uid
				assigned = true
				break
			}
		}
		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, uid, i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = uid
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", uid)
			continue
		}

		seat := matchState.seatOf(uid)
		evt, _ := json.Marshal(map[string]any{
			"user_id":      uid,
			"seat":         seat,
			"owner":        seat == matchState.OwnerSeat,
			"display_name": p.GetUsername(),
		})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
	}

	// The owner seat must belong to a human.
	if matchState.OwnerSeat < 0 || bot.IsBot(matchState.Seats[matchState.OwnerSeat]) || matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave frees seats and abandons any in-flight round the leaver was part of.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		delete(matchState.Presences, uid)

		seat := matchState.seatOf(uid)
		if seat < 0 {
			continue
		}
		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", uid, seat)

		if matchState.Game != nil {
			if _, playing := matchState.Game.Players[uid]; playing {
				logger.Info("MatchLeave: Player %s abandoned the round.", uid)
				matchState.Game = nil
			}
		}

		evt, _ := json.Marshal(map[string]any{"user_id": uid})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, evt, nil, nil, true)
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	if matchState.OwnerSeat < 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(ctx, matchState, dispatcher, logger, msg)
		case OpCapture:
			mh.handleCapture(ctx, matchState, dispatcher, logger, msg)
		case OpBuild:
			mh.handleBuild(ctx, matchState, dispatcher, logger, msg)
		case OpTrail:
			mh.handleTrail(ctx, matchState, dispatcher, logger, msg)
		case OpSuggestMoves:
			mh.handleSuggestMoves(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleStartRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: User %s tried to start but is not owner (owner_seat=%d)", msg.GetUserId(), state.OwnerSeat)
		return
	}
	if state.Game != nil && state.Game.Phase == domain.PhasePlaying {
		logger.Warn("StartRound: Round already in progress.")
		return
	}
	if state.occupiedSeatCount() < app.PlayersPerMatch {
		logger.Warn("StartRound: Cannot start with %d players.", state.occupiedSeatCount())
		return
	}

	game, events, err := state.App.StartRound(state.Seats[:])
	if err != nil {
		logger.Error("StartRound: Failed to start round: %v", err)
		return
	}

	state.Game = game
	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	logger.Info("StartRound: Round started between %s and %s.", state.Seats[0], state.Seats[1])
}

func (mh *matchHandler) handleCapture(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleCapture: Round not started.")
		return
	}

	var req captureRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Error("handleCapture: Failed to unmarshal request: %v", err)
		return
	}

	events, err := state.App.ExecuteCapture(state.Game, msg.GetUserId(), req.HandCardID, req.TableCardIDs, req.BuildIDs)
	if err != nil {
		logger.Warn("handleCapture: User %s capture rejected: %v", msg.GetUserId(), err)
		mh.sendRejection(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleBuild(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleBuild: Round not started.")
		return
	}

	var req buildRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Error("handleBuild: Failed to unmarshal request: %v", err)
		return
	}

	events, err := state.App.ExecuteBuild(state.Game, msg.GetUserId(), req.HandCardID, req.TableCardIDs, req.Value)
	if err != nil {
		logger.Warn("handleBuild: User %s build rejected: %v", msg.GetUserId(), err)
		mh.sendRejection(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleTrail(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleTrail: Round not started.")
		return
	}

	var req trailRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Error("handleTrail: Failed to unmarshal request: %v", err)
		return
	}

	events, err := state.App.ExecuteTrail(state.Game, msg.GetUserId(), req.HandCardID)
	if err != nil {
		logger.Warn("handleTrail: User %s trail rejected: %v", msg.GetUserId(), err)
		mh.sendRejection(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleSuggestMoves(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleSuggestMoves: Round not started.")
		return
	}

	suggestions := advisor.Suggest(state.Game, msg.GetUserId(), state.Config.HintCount)
	payload, err := json.Marshal(moveSuggestionsEvent{Suggestions: suggestions})
	if err != nil {
		logger.Error("handleSuggestMoves: Failed to marshal suggestions: %v", err)
		return
	}

	presence, ok := state.Presences[msg.GetUserId()]
	if !ok {
		return
	}
	_ = dispatcher.BroadcastMessage(OpMoveSuggestions, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the empty seat when a lone human has waited long enough.
	if state.Game == nil {
		if state.humanPlayerCount() == 1 && state.openSeatCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.Config.BotAutoFillDelaySeconds) {
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.IdentityFor(i)
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = bot.NewAgent(identity.UserID)

					evt, _ := json.Marshal(map[string]any{
						"user_id":      identity.UserID,
						"seat":         i,
						"owner":        false,
						"display_name": identity.Username,
					})
					_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
				}
				mh.updateLabel(state, dispatcher, logger)
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Play bot turns with a small human-feeling delay.
	if state.Game.Phase != domain.PhasePlaying {
		return
	}
	currentUserID := state.Game.CurrentTurn
	if !bot.IsBot(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.Config.BotMaxDelaySeconds-state.Config.BotMinDelaySeconds+1) + state.Config.BotMinDelaySeconds
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		agent = bot.NewAgent(currentUserID)
		state.Bots[currentUserID] = agent
	}

	move, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", currentUserID, err)
		return
	}

	var events []app.Event
	switch move.Action {
	case advisor.ActionCapture:
		events, err = state.App.ExecuteCapture(state.Game, currentUserID, move.HandCardID, move.TableCardIDs, move.BuildIDs)
	case advisor.ActionBuild:
		events, err = state.App.ExecuteBuild(state.Game, currentUserID, move.HandCardID, move.TableCardIDs, move.BuildValue)
	default:
		events, err = state.App.ExecuteTrail(state.Game, currentUserID, move.HandCardID)
	}
	if err != nil {
		logger.Error("processBots: Bot %s move rejected: %v", currentUserID, err)
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent converts app events to opcodes and dispatches them. Round-end
// bookkeeping (stats, label) also happens here, mirroring where the game state
// transition is observed.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64

	switch ev.Kind {
	case app.EventRoundStarted:
		opCode = OpRoundStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventCardsCaptured:
		opCode = OpCardsCaptured
	case app.EventBuildCreated:
		opCode = OpBuildCreated
	case app.EventCardTrailed:
		opCode = OpCardTrailed
	case app.EventRoundEnded:
		opCode = OpRoundEnded
		mh.recordRoundResult(ctx, state, logger, ev)
		state.Game = nil
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// If the intended recipients are all offline (e.g. bots), do not
		// leak the payload to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	_ = dispatcher.BroadcastMessage(opCode, payload, recipients, nil, true)
}

func (mh *matchHandler) recordRoundResult(ctx context.Context, state *MatchState, logger runtime.Logger, ev app.Event) {
	payload, ok := ev.Payload.(app.RoundEndedPayload)
	if !ok || state.Profiles == nil {
		return
	}

	best := 0
	for _, breakdown := range payload.Scores {
		if breakdown.Total > best {
			best = breakdown.Total
		}
	}

	for userID, breakdown := range payload.Scores {
		if bot.IsBot(userID) {
			continue
		}
		won := breakdown.Total == best && breakdown.Total > 0 && !isTied(payload.Scores, best)
		if err := state.Profiles.RecordRound(ctx, userID, won, breakdown.Total); err != nil {
			logger.Warn("Failed to record round stats for %s: %v", userID, err)
		}
	}
}

func isTied(scores map[string]domain.ScoreBreakdown, best int) bool {
	count := 0
	for _, b := range scores {
		if b.Total == best {
			count++
		}
	}
	return count > 1
}

func (mh *matchHandler) sendRejection(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, cause error) {
	event := moveRejectedEvent{Reason: "invalid_move", Message: cause.Error()}
	var ruleErr *domain.RuleError
	if errors.As(cause, &ruleErr) {
		event.Reason = string(ruleErr.Reason)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal rejection: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send rejection to %s: presence not found", userID)
		return
	}
	_ = dispatcher.BroadcastMessage(OpMoveRejected, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label := Label{
		Open:  state.Game == nil && state.openSeatCount() > 0,
		Game:  "cassino",
		Phase: state.phase(),
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
