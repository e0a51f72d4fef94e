// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the project catalog, from catalog_path when set and from
// the embedded copy otherwise. A catalog that fails validation aborts
// startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if err := ctx.Err(); err != nil {
		return DBDeps{}, err
	}

	var (
		store *catalogstore.Store
		err   error
	)
	source := appCfg.CatalogPath
	if source == "" {
		source = "embedded"
		store, err = catalogstore.LoadEmbedded()
	} else {
		store, err = catalogstore.LoadFile(appCfg.CatalogPath)
	}
	if err != nil {
		logger.Error("catalog load failed", zap.String("source", source), zap.Error(err))
		return DBDeps{}, fmt.Errorf("load catalog (%s): %w", source, err)
	}

	logger.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("projects", store.Len()))
	return DBDeps{Catalog: store}, nil
}

// EnsureSchema checks the loaded catalog is usable by the pages.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Catalog == nil {
		return fmt.Errorf("catalog not loaded")
	}
	if _, err := deps.Catalog.Profile(ctx); err != nil {
		return fmt.Errorf("catalog profile: %w", err)
	}
	if deps.Catalog.Len() == 0 {
		logger.Warn("catalog has no projects; portfolio pages will show placeholders")
	}
	return nil
}
