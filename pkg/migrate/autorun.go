package migrate

import (
	"context"
	"fmt"

	"github.com/ballinwear/assistant-backend/pkg/config"
	"github.com/ballinwear/assistant-backend/pkg/db"
	"github.com/ballinwear/assistant-backend/pkg/logger"
)

// ShouldAutoRun reports whether the api should apply migrations at boot: dev with
// the AutoMigrate flag, or any local sqlite database, which is never migrated by hand.
func ShouldAutoRun(cfg *config.Config) bool {
	if cfg.DB.Driver == config.DriverSQLite {
		return true
	}
	return cfg.App.IsDev() && cfg.FeatureFlags.AutoMigrate
}

// MaybeRunDev applies pending migrations when ShouldAutoRun allows it.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !ShouldAutoRun(cfg) {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": cfg.DB.Driver})
	logg.Info(ctx, "applying schema migrations at boot")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	version, err := Version(ctx, sqlDB, cfg.DB.Driver)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "schema_version", version), "schema is up to date")
	return nil
}
