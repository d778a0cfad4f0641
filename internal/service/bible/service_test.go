package bible

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
	"github.com/warrenjonahb/bible-study-app/internal/lexicon"
)

func ptr(s string) *string { return &s }

func testLexicon() *lexicon.Store {
	return lexicon.New(map[string]domain.LexiconEntry{
		"G2316": {
			Code:             "G2316",
			Lemma:            ptr("θεός"),
			StrongsDef:       ptr("a deity"),
			KJVDef:           ptr("God, god"),
			Transliterations: map[string]string{"translit": "theos"},
		},
	}, map[string]domain.LexiconEntry{
		"H430": {Code: "H430", Lemma: ptr("אֱלֹהִים"), Transliterations: map[string]string{"xlit": "ʼĕlôhîym"}},
	})
}

func newTestService(t *testing.T, repo *verseRepoMock) *Service {
	t.Helper()
	return NewService(slog.Default(), repo, testLexicon(), domain.Canon{})
}

// unusedRepo fails the test if the service reaches the store.
func unusedRepo(t *testing.T) *verseRepoMock {
	return &verseRepoMock{
		MaxChapterFunc: func(ctx context.Context, book int) (int, error) {
			t.Errorf("MaxChapter must not be called (book %d)", book)
			return 0, nil
		},
		VersesInChapterFunc: func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
			t.Errorf("VersesInChapter must not be called (%d:%d)", book, chapter)
			return nil, nil
		},
	}
}

// ---------------------------------------------------------------------------
// ListBooks / ResolveBook
// ---------------------------------------------------------------------------

func TestListBooks_Canonical(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, unusedRepo(t))
	books := svc.ListBooks()

	require.Len(t, books, 66)
	assert.Equal(t, domain.Book{ID: 1, Name: "Genesis", OSIS: "Gen"}, books[0])
	assert.Equal(t, "John", books[42].Name)
	for i := 1; i < len(books); i++ {
		assert.Less(t, books[i-1].ID, books[i].ID)
	}
}

func TestResolveBook(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, unusedRepo(t))

	b, err := svc.ResolveBook("john")
	require.NoError(t, err)
	assert.Equal(t, 43, b.ID)

	_, err = svc.ResolveBook("Tobit")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// ListChapters
// ---------------------------------------------------------------------------

func TestListChapters_John(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		MaxChapterFunc: func(ctx context.Context, book int) (int, error) {
			return 21, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.ListChapters(context.Background(), 43)
	require.NoError(t, err)

	assert.Equal(t, "John", got.Book.Name)
	require.Len(t, got.Chapters, 21)
	for i, ch := range got.Chapters {
		assert.Equal(t, i+1, ch)
	}
	require.Len(t, repo.MaxChapterCalls(), 1)
	assert.Equal(t, 43, repo.MaxChapterCalls()[0].Book)
}

func TestListChapters_SingleChapterBook(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		MaxChapterFunc: func(ctx context.Context, book int) (int, error) { return 1, nil },
	}
	got, err := newTestService(t, repo).ListChapters(context.Background(), 57)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Chapters)
}

func TestListChapters_UnknownBookID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, unusedRepo(t))

	for _, id := range []int{0, -3, 67, 999} {
		_, err := svc.ListChapters(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "book %d", id)
	}
}

func TestListChapters_BookWithoutVerses(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		MaxChapterFunc: func(ctx context.Context, book int) (int, error) {
			return 0, domain.ErrNotFound
		},
	}
	_, err := newTestService(t, repo).ListChapters(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListChapters_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk I/O error")
	repo := &verseRepoMock{
		MaxChapterFunc: func(ctx context.Context, book int) (int, error) { return 0, boom },
	}
	_, err := newTestService(t, repo).ListChapters(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// ListVerses
// ---------------------------------------------------------------------------

func TestListVerses_Annotates(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		VersesInChapterFunc: func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
			return []domain.VerseRow{
				{Book: 43, Chapter: 1, Verse: 1, Text: "In the beginning was the Word"},
				{Book: 43, Chapter: 1, Verse: 2, Text: "The same was in the beginning with God{G2316}."},
			}, nil
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.ListVerses(context.Background(), 43, 1)
	require.NoError(t, err)

	assert.Equal(t, "John", got.Book.Name)
	assert.Equal(t, 1, got.Number)
	require.Len(t, got.Verses, 2)

	first := got.Verses[0]
	assert.Equal(t, 1, first.Number)
	require.Len(t, first.Words, 6)
	for _, w := range first.Words {
		assert.Nil(t, w.Strongs)
	}

	second := got.Verses[1]
	assert.Equal(t, 2, second.Number)
	require.Len(t, second.Words, 8)
	god := second.Words[7]
	assert.Equal(t, "God.", god.Text)
	require.NotNil(t, god.Strongs)
	assert.Equal(t, "G2316", *god.Strongs)
	require.NotNil(t, god.Lemma)
	assert.Equal(t, "θεός", *god.Lemma)
	require.NotNil(t, god.Translit)
	assert.Equal(t, "theos", *god.Translit)

	calls := repo.VersesInChapterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 43, calls[0].Book)
	assert.Equal(t, 1, calls[0].Chapter)
}

func TestListVerses_KeepsStoreOrder(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		VersesInChapterFunc: func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
			return []domain.VerseRow{
				{Verse: 1, Text: "a"}, {Verse: 2, Text: "b"}, {Verse: 3, Text: "c"},
			}, nil
		},
	}
	got, err := newTestService(t, repo).ListVerses(context.Background(), 1, 1)
	require.NoError(t, err)

	nums := make([]int, len(got.Verses))
	for i, v := range got.Verses {
		nums[i] = v.Number
	}
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestListVerses_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		book    int
		chapter int
	}{
		{name: "unknown book", book: 70, chapter: 1},
		{name: "chapter zero", book: 43, chapter: 0},
		{name: "negative chapter", book: 43, chapter: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, unusedRepo(t))
			_, err := svc.ListVerses(context.Background(), tt.book, tt.chapter)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestListVerses_EmptyChapter(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		VersesInChapterFunc: func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
			return []domain.VerseRow{}, nil
		},
	}
	_, err := newTestService(t, repo).ListVerses(context.Background(), 43, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListVerses_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	repo := &verseRepoMock{
		VersesInChapterFunc: func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
			return nil, context.DeadlineExceeded
		},
	}
	_, err := newTestService(t, repo).ListVerses(context.Background(), 43, 3)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ---------------------------------------------------------------------------
// LookupStrongs
// ---------------------------------------------------------------------------

func TestLookupStrongs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, unusedRepo(t))

	entry, err := svc.LookupStrongs(" h430 ")
	require.NoError(t, err)
	assert.Equal(t, "H430", entry.Code)

	_, err = svc.LookupStrongs("G9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, bad := range []string{"", "G", "X12", "G12a", "430"} {
		_, err := svc.LookupStrongs(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, "code %q", bad)
	}
}
