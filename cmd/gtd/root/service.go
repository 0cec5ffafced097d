package root

import (
	"context"
	"io"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/config"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/geo"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/logging"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/notify"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/storage"
)

// openService wires configuration, storage, geocoding and notifications
// into an engine ready for one command. StartDay runs once here so every
// command sees rolled-over dailies and a settled streak.
func openService(ctx context.Context, out io.Writer) (*engine.Service, func(), error) {
	cfg := config.Load()
	log := logging.Init(cfg.Debug)

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}

	resolver := geo.NewNominatim(geo.NominatimOptions{
		BaseURL:   cfg.Geo.BaseURL,
		Timeout:   cfg.Geo.Timeout,
		Lat:       cfg.Geo.Lat,
		Lon:       cfg.Geo.Lon,
		HasCoords: cfg.Geo.HasCoords,
		Logger:    log,
	})

	svc, err := engine.NewService(ctx, engine.Deps{
		Store:    store,
		Geo:      resolver,
		Notifier: notify.Multi{notify.NewConsole(out), notify.NewLogger(log)},
		Logger:   log,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := svc.StartDay(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
