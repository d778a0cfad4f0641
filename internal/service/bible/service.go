// Package bible answers book, chapter and verse queries over the verse store,
// annotating verse text with Strong's lexicon entries.
package bible

import (
	"context"
	"log/slog"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

type verseRepo interface {
	MaxChapter(ctx context.Context, book int) (int, error)
	VersesInChapter(ctx context.Context, book, chapter int) ([]domain.VerseRow, error)
}

type lexiconStore interface {
	Lookup(code string) (*domain.LexiconEntry, bool)
}

type bookCatalog interface {
	Books() []domain.Book
	BookByID(id int) (domain.Book, bool)
	FindBook(ref string) (domain.Book, bool)
}

// Service is the read-only query facade. It is safe for concurrent use as
// long as its dependencies are.
type Service struct {
	verses  verseRepo
	lexicon lexiconStore
	books   bookCatalog
	log     *slog.Logger
}

// NewService creates a new Bible query service.
func NewService(
	log *slog.Logger,
	verses verseRepo,
	lexicon lexiconStore,
	books bookCatalog,
) *Service {
	return &Service{
		verses:  verses,
		lexicon: lexicon,
		books:   books,
		log:     log.With("service", "bible"),
	}
}
