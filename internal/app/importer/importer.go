// Package importer copies a SQLite verse store into the PostgreSQL backend.
// It is run offline by cmd/importer, never by the API server.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// Source yields every verse of the source store in canonical order.
type Source interface {
	All(ctx context.Context) ([]domain.VerseRow, error)
}

// Target is the writable side of the Postgres verse repository.
type Target interface {
	Count(ctx context.Context) (int64, error)
	Truncate(ctx context.Context) error
	BulkLoad(ctx context.Context, rows []domain.VerseRow) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options control a single import run.
type Options struct {
	// Truncate empties the target before loading.
	Truncate bool
	// DryRun reads and validates the source without writing.
	DryRun bool
}

// Result summarises an import run.
type Result struct {
	Read     int
	Loaded   int64
	Total    int64
	Duration time.Duration
}

// Importer moves verse rows from Source to Target.
type Importer struct {
	log    *slog.Logger
	source Source
	target Target
	tx     txRunner
}

// New creates an Importer.
func New(log *slog.Logger, source Source, target Target, tx txRunner) *Importer {
	return &Importer{
		log:    log.With("component", "importer"),
		source: source,
		target: target,
		tx:     tx,
	}
}

// Run reads the whole source, validates it, then truncates (optionally) and
// loads the target inside one transaction. Nothing is written when any row is
// invalid or when opts.DryRun is set.
func (im *Importer) Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()

	rows, err := im.source.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read source: %w", err)
	}
	if err := validate(rows); err != nil {
		return Result{}, err
	}

	res := Result{Read: len(rows)}
	im.log.Info("source read", slog.Int("rows", res.Read))

	if opts.DryRun {
		im.log.Info("dry run, skipping load")
		res.Duration = time.Since(start)
		return res, nil
	}

	err = im.tx.RunInTx(ctx, func(ctx context.Context) error {
		if opts.Truncate {
			if err := im.target.Truncate(ctx); err != nil {
				return fmt.Errorf("truncate: %w", err)
			}
		}
		n, err := im.target.BulkLoad(ctx, rows)
		if err != nil {
			return fmt.Errorf("bulk load: %w", err)
		}
		res.Loaded = n
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Total, err = im.target.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count: %w", err)
	}
	res.Duration = time.Since(start)

	im.log.Info("import complete",
		slog.Int64("loaded", res.Loaded),
		slog.Int64("total", res.Total),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// validate rejects rows the target schema would refuse, so that a bad source
// fails before the transaction opens.
func validate(rows []domain.VerseRow) error {
	if len(rows) == 0 {
		return domain.NewValidationError("source", "no verses")
	}

	var errs []domain.FieldError
	for _, r := range rows {
		if _, ok := domain.BookByID(r.Book); !ok {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("%d:%d:%d", r.Book, r.Chapter, r.Verse),
				Message: "unknown book",
			})
			continue
		}
		if r.Chapter < 1 || r.Verse < 1 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("%d:%d:%d", r.Book, r.Chapter, r.Verse),
				Message: "chapter and verse must be positive",
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
