package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// SeedVerses inserts rows, ignoring rows whose key already exists.
// Tests sharing the container should seed distinct books.
func SeedVerses(t *testing.T, pool *pgxpool.Pool, rows ...domain.VerseRow) {
	t.Helper()
	ctx := context.Background()

	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO verses (book, chapter, verse, text) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (book, chapter, verse) DO NOTHING`,
			r.Book, r.Chapter, r.Verse, r.Text,
		)
		if err != nil {
			t.Fatalf("testhelper: seed verse %d:%d:%d: %v", r.Book, r.Chapter, r.Verse, err)
		}
	}
}

// DeleteBook removes all verses of book.
func DeleteBook(t *testing.T, pool *pgxpool.Pool, book int) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `DELETE FROM verses WHERE book = $1`, book); err != nil {
		t.Fatalf("testhelper: delete book %d: %v", book, err)
	}
}
