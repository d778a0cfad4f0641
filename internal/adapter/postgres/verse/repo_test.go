package verse

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

const (
	maxChapterSQL = `SELECT COALESCE(MAX(chapter), 0) FROM verses WHERE book = $1`
	versesSQL     = `SELECT book, chapter, verse, text FROM verses WHERE book = $1 AND chapter = $2 ORDER BY verse ASC`
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return New(mock), mock
}

func TestRepo_MaxChapter(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    int
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(maxChapterSQL)).
					WithArgs(43).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(21))
			},
			want: 21,
		},
		{
			name: "book without verses",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(maxChapterSQL)).
					WithArgs(43).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "context canceled",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(maxChapterSQL)).
					WithArgs(43).
					WillReturnError(context.Canceled)
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.MaxChapter(context.Background(), 43)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepo_VersesInChapter(t *testing.T) {
	t.Run("ordered rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(versesSQL)).
			WithArgs(43, 3).
			WillReturnRows(pgxmock.NewRows([]string{"book", "chapter", "verse", "text"}).
				AddRow(43, 3, 16, "For{G1063} God{G2316} so{G3779} loved{G25}").
				AddRow(43, 3, 17, "For{G1063} God{G2316} sent{G649}"))

		got, err := repo.VersesInChapter(context.Background(), 43, 3)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.VerseRow{Book: 43, Chapter: 3, Verse: 16, Text: "For{G1063} God{G2316} so{G3779} loved{G25}"}, got[0])
		assert.Equal(t, 17, got[1].Verse)
	})

	t.Run("empty chapter", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(versesSQL)).
			WithArgs(43, 99).
			WillReturnRows(pgxmock.NewRows([]string{"book", "chapter", "verse", "text"}))

		got, err := repo.VersesInChapter(context.Background(), 43, 99)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(versesSQL)).
			WithArgs(43, 3).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.VersesInChapter(context.Background(), 43, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chapter 43:3")
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepo_BulkLoad(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := []domain.VerseRow{
		{Book: 1, Chapter: 1, Verse: 1, Text: "In{H7225} the beginning"},
		{Book: 1, Chapter: 1, Verse: 2, Text: "And the earth{H776}"},
	}

	mock.ExpectCopyFrom(pgx.Identifier{"verses"}, []string{"book", "chapter", "verse", "text"}).
		WillReturnResult(2)

	n, err := repo.BulkLoad(context.Background(), rows)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRepo_BulkLoad_Duplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectCopyFrom(pgx.Identifier{"verses"}, []string{"book", "chapter", "verse", "text"}).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	_, err := repo.BulkLoad(context.Background(), []domain.VerseRow{{Book: 1, Chapter: 1, Verse: 1, Text: "x"}})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_TruncateAndCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE verses`)).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM verses`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	ctx := context.Background()
	require.NoError(t, repo.Truncate(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepo_Ping(t *testing.T) {
	repo, mock := newMockRepo(t)
	down := errors.New("server closed the connection")

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(down)

	assert.NoError(t, repo.Ping(context.Background()))
	assert.ErrorIs(t, repo.Ping(context.Background()), down)
}
