package components

import (
	"context"
	"log/slog"

	"rentdesk/internal/domain/settings"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/infra/memstore"
	"rentdesk/internal/infra/pgstore"
	"rentdesk/internal/pkg/config"
	"rentdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
	fx.Invoke(SeedAdmin),
)

// NewStore selects the persistence backend. An unreachable database under the
// postgres driver degrades to the in-memory store instead of refusing to
// start; /health reports the degradation.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Store, error) {
	defaults := settings.Default(cfg.Billing.DefaultTaxPercentage)

	if cfg.Store.Driver == "memory" {
		logger.Info("using the in-memory store")
		return memstore.NewStore(defaults), nil
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Warn("database unreachable, degrading to the in-memory store",
			"host", cfg.DB.Host, "error", err)
		return memstore.NewStore(defaults), nil
	}

	if err := pgstore.Migrate(ctx, pool); err != nil {
		cleanup()
		logger.Warn("database migration failed, degrading to the in-memory store", "error", err)
		return memstore.NewStore(defaults), nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("connected to postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return pgstore.NewStore(pool), nil
}
