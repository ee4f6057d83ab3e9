package bot

// Identity is the display persona attached to a bot seat.
type Identity struct {
	UserID   string
	Username string
}

var identities = []Identity{
	{UserID: "bot_rosa", Username: "Rosa"},
	{UserID: "bot_marco", Username: "Marco"},
	{UserID: "bot_elena", Username: "Elena"},
	{UserID: "bot_luis", Username: "Luis"},
}

// IdentityFor returns a stable identity for the given seat index.
func IdentityFor(seat int) Identity {
	if seat < 0 {
		seat = 0
	}
	return identities[seat%len(identities)]
}

// UsernameFor returns the display name for a bot user ID, or "" for unknown
// or non-bot IDs.
func UsernameFor(userID string) string {
	for _, id := range identities {
		if id.UserID == userID {
			return id.Username
		}
	}
	return ""
}
