// Package verse implements the verse repository using PostgreSQL.
package verse

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/warrenjonahb/bible-study-app/internal/adapter/postgres"
	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

const table = "verses"

var (
	psql    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns = []string{"book", "chapter", "verse", "text"}
)

// Repo provides verse lookups backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new verse repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// MaxChapter returns the highest chapter number stored for book.
func (r *Repo) MaxChapter(ctx context.Context, book int) (int, error) {
	query, args, err := psql.
		Select("COALESCE(MAX(chapter), 0)").
		From(table).
		Where(squirrel.Eq{"book": book}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build max chapter query: %w", err)
	}

	var n int
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, query, args...); err != nil {
		return 0, postgres.MapError(err, "book", book)
	}
	if n == 0 {
		return 0, fmt.Errorf("book %d: %w", book, domain.ErrNotFound)
	}
	return n, nil
}

// VersesInChapter returns the verses of one chapter in ascending verse
// order. An empty result is not an error.
func (r *Repo) VersesInChapter(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
	query, args, err := psql.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"book": book}).
		Where(squirrel.Eq{"chapter": chapter}).
		OrderBy("verse ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verses query: %w", err)
	}

	rows := []domain.VerseRow{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", fmt.Sprintf("%d:%d", book, chapter))
	}
	return rows, nil
}

// Count returns the number of stored verses.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, query, args...); err != nil {
		return 0, postgres.MapError(err, "verses", "count")
	}
	return n, nil
}

// Truncate removes every stored verse.
func (r *Repo) Truncate(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return postgres.MapError(err, "verses", "truncate")
	}
	return nil
}

// BulkLoad copies rows into the verses table with COPY and returns the
// number of rows written. Run it inside TxManager.RunInTx to make the load
// atomic.
func (r *Repo) BulkLoad(ctx context.Context, rows []domain.VerseRow) (int64, error) {
	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		v := rows[i]
		return []any{v.Book, v.Chapter, v.Verse, v.Text}, nil
	})

	n, err := postgres.QuerierFromCtx(ctx, r.db).CopyFrom(ctx, pgx.Identifier{table}, columns, src)
	if err != nil {
		return n, postgres.MapError(err, "verses", "copy")
	}
	return n, nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
