package root

import (
	"context"

	"taskhero/internal/engine"
	"taskhero/internal/storage"
)

func (a *app) openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath(a.dbPath)
	if err != nil {
		return nil, nil, err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("database opened", "path", path)

	cleanup := func() {
		if err := db.Close(); err != nil {
			a.logger.Error("close database", "error", err)
		}
	}
	eng := engine.New(engine.SystemClock{Location: loc})
	return engine.NewService(db, eng), cleanup, nil
}

// refresh re-evaluates the rules after a mutation so stored state never lags
// the task list.
func (a *app) refresh(ctx context.Context, svc *engine.Service) (*engine.Snapshot, error) {
	snap, err := svc.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("refreshed", "points", snap.State.Points, "daily_reward", snap.State.DailyReward, "today", snap.Today)
	return snap, nil
}
