package nakama

// Client -> server opcodes.
const (
	OpStartRound   int64 = 1
	OpCapture      int64 = 2
	OpBuild        int64 = 3
	OpTrail        int64 = 4
	OpSuggestMoves int64 = 5
)

// Server -> client opcodes.
const (
	OpPlayerJoined    int64 = 101
	OpPlayerLeft      int64 = 102
	OpRoundStarted    int64 = 103
	OpHandDealt       int64 = 104
	OpCardsCaptured   int64 = 105
	OpBuildCreated    int64 = 106
	OpCardTrailed     int64 = 107
	OpRoundEnded      int64 = 108
	OpMoveSuggestions int64 = 109
	OpMoveRejected    int64 = 110
)
