// Command importer provisions the PostgreSQL verse store. It applies the
// embedded migrations, then copies every verse of a SQLite store into the
// verses table in a single transaction.
//
// Flags:
//
//	--source    path to the SQLite verse store (default: storage.sqlite_path)
//	--truncate  empty the verses table before loading
//	--dry-run   read and validate the source without touching Postgres
//
// Requires database.dsn (DATABASE_DSN). Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/warrenjonahb/bible-study-app/internal/adapter/postgres"
	"github.com/warrenjonahb/bible-study-app/internal/adapter/postgres/verse"
	"github.com/warrenjonahb/bible-study-app/internal/adapter/sqlite"
	"github.com/warrenjonahb/bible-study-app/internal/app"
	"github.com/warrenjonahb/bible-study-app/internal/app/importer"
	"github.com/warrenjonahb/bible-study-app/internal/config"
)

// Compile-time interface assertions.
var (
	_ importer.Source = (*sqlite.VerseRepo)(nil)
	_ importer.Target = (*verse.Repo)(nil)
)

func main() {
	sourceFlag := flag.String("source", "", "path to the SQLite verse store (default: storage.sqlite_path)")
	truncateFlag := flag.Bool("truncate", false, "empty the verses table before loading")
	dryRunFlag := flag.Bool("dry-run", false, "read and validate the source without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	sourcePath := cfg.Storage.SQLitePath
	if *sourceFlag != "" {
		sourcePath = *sourceFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	sdb, err := sqlite.Open(ctx, sourcePath, 1)
	if err != nil {
		logger.Error("open source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sdb.Close()
	source := sqlite.NewVerseRepo(sdb)

	if *dryRunFlag {
		res, err := importer.New(logger, source, nil, nil).Run(ctx, importer.Options{DryRun: true})
		if err != nil {
			logger.Error("dry run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run complete", slog.Int("rows", res.Read))
		return
	}

	if cfg.Database.DSN == "" {
		logger.Error("database.dsn (DATABASE_DSN) is required")
		os.Exit(1)
	}

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, r := range applied {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	imp := importer.New(logger, source, verse.New(pool), postgres.NewTxManager(pool))
	res, err := imp.Run(ctx, importer.Options{Truncate: *truncateFlag})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("verses imported",
		slog.Int("read", res.Read),
		slog.Int64("loaded", res.Loaded),
		slog.Int64("total", res.Total),
	)
}
