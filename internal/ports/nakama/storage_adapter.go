package nakama

import (
	"context"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	profileCollection = "player_profiles"
	profileKey        = "profile"
)

// profileStorageAdapter implements ports.ProfileStorage on the Nakama storage
// API. Profiles are readable by their owner and writable only by the server.
type profileStorageAdapter struct {
	nk runtime.NakamaModule
}

// NewProfileStorageAdapter constructs the Nakama-backed profile storage port.
func NewProfileStorageAdapter(nk runtime.NakamaModule) ports.ProfileStorage {
	return &profileStorageAdapter{nk: nk}
}

func (a *profileStorageAdapter) Read(ctx context.Context, userID string) ([]byte, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: profileCollection,
		Key:        profileKey,
		UserID:     userID,
	}})
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, nil
	}
	return []byte(objects[0].GetValue()), nil
}

func (a *profileStorageAdapter) Write(ctx context.Context, userID string, data []byte) error {
	_, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      profileCollection,
		Key:             profileKey,
		UserID:          userID,
		Value:           string(data),
		PermissionRead:  1, // owner read
		PermissionWrite: 0, // server only
	}})
	return err
}
