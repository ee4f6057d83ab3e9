package ports

import "context"

// ProfileStorage persists serialized player profiles. Read returns (nil, nil)
// when no profile exists yet for the user.
type ProfileStorage interface {
	Read(ctx context.Context, userID string) ([]byte, error)
	Write(ctx context.Context, userID string, data []byte) error
}
