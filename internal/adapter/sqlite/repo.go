package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

const table = "verses"

var columns = []string{"book", "chapter", "verse", "text"}

// VerseRepo reads verses from the verses(book, chapter, verse, text) table.
// The *sql.DB pool makes it safe for concurrent use.
type VerseRepo struct {
	db *sql.DB
}

// NewVerseRepo creates a verse repository over db.
func NewVerseRepo(db *sql.DB) *VerseRepo {
	return &VerseRepo{db: db}
}

// MaxChapter returns the highest chapter number stored for book.
func (r *VerseRepo) MaxChapter(ctx context.Context, book int) (int, error) {
	query, args, err := squirrel.
		Select("COALESCE(MAX(chapter), 0)").
		From(table).
		Where(squirrel.Eq{"book": book}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build max chapter query: %w", err)
	}

	var n int
	if err := sqlscan.Get(ctx, r.db, &n, query, args...); err != nil {
		return 0, mapError(err, "book", book)
	}
	if n == 0 {
		return 0, fmt.Errorf("book %d: %w", book, domain.ErrNotFound)
	}
	return n, nil
}

// VersesInChapter returns the verses of one chapter in ascending verse
// order. An empty result is not an error.
func (r *VerseRepo) VersesInChapter(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
	query, args, err := squirrel.
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
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError(err, "chapter", fmt.Sprintf("%d:%d", book, chapter))
	}
	return rows, nil
}

// All returns every stored verse in canonical order.
func (r *VerseRepo) All(ctx context.Context) ([]domain.VerseRow, error) {
	query, args, err := squirrel.
		Select(columns...).
		From(table).
		OrderBy("book ASC", "chapter ASC", "verse ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build all verses query: %w", err)
	}

	rows := []domain.VerseRow{}
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError(err, "verses", "all")
	}
	return rows, nil
}

// Ping checks that the store is reachable.
func (r *VerseRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func mapError(err error, entity string, key any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", entity, key, err)
}
