package bible

import (
	"context"
	"sync"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

var _ verseRepo = &verseRepoMock{}

type verseRepoMock struct {
	MaxChapterFunc      func(ctx context.Context, book int) (int, error)
	VersesInChapterFunc func(ctx context.Context, book, chapter int) ([]domain.VerseRow, error)

	calls struct {
		MaxChapter []struct {
			Book int
		}
		VersesInChapter []struct {
			Book    int
			Chapter int
		}
	}
	lockMaxChapter      sync.RWMutex
	lockVersesInChapter sync.RWMutex
}

func (mock *verseRepoMock) MaxChapter(ctx context.Context, book int) (int, error) {
	if mock.MaxChapterFunc == nil {
		panic("verseRepoMock.MaxChapterFunc: method is nil but verseRepo.MaxChapter was just called")
	}
	mock.lockMaxChapter.Lock()
	mock.calls.MaxChapter = append(mock.calls.MaxChapter, struct{ Book int }{Book: book})
	mock.lockMaxChapter.Unlock()
	return mock.MaxChapterFunc(ctx, book)
}

func (mock *verseRepoMock) MaxChapterCalls() []struct{ Book int } {
	mock.lockMaxChapter.RLock()
	calls := mock.calls.MaxChapter
	mock.lockMaxChapter.RUnlock()
	return calls
}

func (mock *verseRepoMock) VersesInChapter(ctx context.Context, book, chapter int) ([]domain.VerseRow, error) {
	if mock.VersesInChapterFunc == nil {
		panic("verseRepoMock.VersesInChapterFunc: method is nil but verseRepo.VersesInChapter was just called")
	}
	callInfo := struct {
		Book    int
		Chapter int
	}{Book: book, Chapter: chapter}
	mock.lockVersesInChapter.Lock()
	mock.calls.VersesInChapter = append(mock.calls.VersesInChapter, callInfo)
	mock.lockVersesInChapter.Unlock()
	return mock.VersesInChapterFunc(ctx, book, chapter)
}

func (mock *verseRepoMock) VersesInChapterCalls() []struct {
	Book    int
	Chapter int
} {
	mock.lockVersesInChapter.RLock()
	calls := mock.calls.VersesInChapter
	mock.lockVersesInChapter.RUnlock()
	return calls
}
