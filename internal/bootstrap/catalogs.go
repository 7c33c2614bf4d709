package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/IdleRates_Go/configs"
	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/config"
	"github.com/osse101/IdleRates_Go/internal/leveling"
)

// LoadCatalogs reads the level table and activity catalogs, preferring
// cfg.CatalogDir over the embedded copies when it is set
func LoadCatalogs(ctx context.Context, cfg *config.Config) (*leveling.Table, *catalog.Catalog, error) {
	var fsys fs.FS = configs.FS
	if cfg.CatalogDir != "" {
		slog.Info(LogMsgCatalogOverride, "dir", cfg.CatalogDir)
		fsys = os.DirFS(cfg.CatalogDir)
	} else {
		slog.Info(LogMsgCatalogEmbedded)
	}

	table, err := leveling.NewLoader().Load(ctx, fsys, configs.PathXPTable)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLevels, err)
	}

	cat, err := catalog.NewLoader().Load(ctx, fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"max_level", table.MaxLevel(),
		"activities", len(cat.Activities.All()))
	return table, cat, nil
}
