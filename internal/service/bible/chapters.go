package bible

import (
	"context"
	"errors"
	"fmt"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// ListChapters returns chapter numbers 1..N for the book, where N is the
// highest chapter in the store. Books outside the catalog, or without any
// stored verses, are reported as domain.ErrNotFound.
func (s *Service) ListChapters(ctx context.Context, bookID int) (*domain.ChapterList, error) {
	book, ok := s.books.BookByID(bookID)
	if !ok {
		return nil, fmt.Errorf("book %d: %w", bookID, domain.ErrNotFound)
	}

	maxChapter, err := s.verses.MaxChapter(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "book has no verses", "book", bookID)
		}
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	chapters := make([]int, maxChapter)
	for i := range chapters {
		chapters[i] = i + 1
	}

	return &domain.ChapterList{Book: book, Chapters: chapters}, nil
}
