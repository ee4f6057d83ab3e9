package main

import (
	"context"
	"database/sql"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// main is never invoked: Nakama loads this package as a plugin via InitModule.
// It exists so the package links under the default buildmode.
func main() {}

// InitModule proxies Nakama initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}
