package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/config"
)

// LoadCatalog returns the built-in catalog, or the file at cfg.CatalogPath
// when one is configured. A positive cfg.TickInterval overrides the
// catalog's tick interval.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
		}
		cat = loaded
	}

	if cfg.TickInterval > 0 {
		ms := int(cfg.TickInterval.Milliseconds())
		if ms < 1 {
			ms = 1
		}
		cat.TickIntervalMs = ms
	}

	slog.Info(LogMsgCatalogLoaded,
		"version", cat.Version,
		"path", cfg.CatalogPath,
		"units", len(cat.Units),
		"achievements", len(cat.Achievements),
		"tick_interval", cat.TickInterval())
	return cat, nil
}
