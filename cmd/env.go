package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/api"
	"github.com/seuhd/campus-coffee/internal/config"
	"github.com/seuhd/campus-coffee/internal/fetcher"
	"github.com/seuhd/campus-coffee/internal/osm"
	"github.com/seuhd/campus-coffee/internal/pos"
	"github.com/seuhd/campus-coffee/internal/store"
)

var (
	_ pos.NodeSource = (*osm.Client)(nil)
	_ api.PosService = (*pos.Service)(nil)
)

// appEnv bundles the dependencies a command needs.
type appEnv struct {
	Store   store.Store
	Service *pos.Service
}

// Close releases the store.
func (e *appEnv) Close() {
	if e.Store == nil {
		return
	}
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("failed to close store", zap.Error(err))
	}
}

func initStore(ctx context.Context, c config.StoreConfig) (store.Store, error) {
	switch c.Driver {
	case "sqlite":
		return store.NewSQLite(c.DatabaseURL)
	case "postgres":
		return store.NewPostgres(ctx, c.DatabaseURL, &store.PoolConfig{
			MaxConns: c.MaxConns,
			MinConns: c.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", c.Driver)
	}
}

func newOSMClient(c config.OSMConfig) *osm.Client {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:         c.UserAgent,
		Timeout:           c.Timeout(),
		ConnectTimeout:    c.ConnectTimeout(),
		RequestsPerSecond: c.RateLimit,
	})
	return osm.NewClient(c.BaseURL, f)
}

// initEnv validates the config for mode and wires store, OSM client and service.
func initEnv(ctx context.Context, mode string) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	st, err := initStore(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "init store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}

	return &appEnv{
		Store:   st,
		Service: pos.NewService(st, newOSMClient(cfg.OSM)),
	}, nil
}
