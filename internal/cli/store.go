package cli

import (
	"context"
	"fmt"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/targets"
)

// openRepository opens the configured target store. The caller must Close
// the returned store.
func (a *app) openRepository(ctx context.Context) (*targets.Repository, targets.Store, error) {
	path, err := a.cfg.StorePath()
	if err != nil {
		return nil, nil, err
	}

	var store targets.Store
	switch a.cfg.Store.Kind {
	case config.StoreSQL:
		store, err = targets.OpenSQLStore(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open target database: %w", err)
		}
	default:
		store = targets.NewFileStore(path)
	}

	a.logger.Debug("opened target store", "kind", a.cfg.Store.Kind, "path", path)
	return targets.NewRepository(store), store, nil
}
