package app

import (
	"context"
	"fmt"

	"github.com/warrenjonahb/bible-study-app/internal/adapter/postgres"
	"github.com/warrenjonahb/bible-study-app/internal/adapter/postgres/verse"
	"github.com/warrenjonahb/bible-study-app/internal/adapter/sqlite"
	"github.com/warrenjonahb/bible-study-app/internal/config"
	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// VerseStore is the read side shared by both storage backends.
type VerseStore interface {
	MaxChapter(ctx context.Context, book int) (int, error)
	VersesInChapter(ctx context.Context, book, chapter int) ([]domain.VerseRow, error)
	Ping(ctx context.Context) error
}

// OpenStore opens the verse store selected by cfg.Storage.Driver. The returned
// func releases the underlying connection pool.
func OpenStore(ctx context.Context, cfg *config.Config) (VerseStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath, cfg.Storage.SQLiteMaxOpenConns)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewVerseRepo(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return verse.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
