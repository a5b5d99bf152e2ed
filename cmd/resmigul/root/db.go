package root

import (
	"context"
	"database/sql"

	"resmigul/internal/engine"
	"resmigul/internal/storage"
	"resmigul/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the database, loads state (applying any pending day
// rollover) and switches the styles to the stored theme.
func openService(ctx context.Context, opts ...engine.Option) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db, opts...)
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if st, err := svc.State(); err == nil {
		ui.Apply(string(st.Settings.Theme))
	}
	return svc, cleanup, nil
}
