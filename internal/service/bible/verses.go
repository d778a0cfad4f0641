package bible

import (
	"context"
	"fmt"
	"strings"

	"github.com/warrenjonahb/bible-study-app/internal/annotate"
	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// ListVerses returns the annotated verses of one chapter in stored order.
// An unknown book, a chapter below 1 or a chapter without verses is
// reported as domain.ErrNotFound.
func (s *Service) ListVerses(ctx context.Context, bookID, chapter int) (*domain.Chapter, error) {
	book, ok := s.books.BookByID(bookID)
	if !ok {
		return nil, fmt.Errorf("book %d: %w", bookID, domain.ErrNotFound)
	}
	if chapter < 1 {
		return nil, fmt.Errorf("chapter %d:%d: %w", bookID, chapter, domain.ErrNotFound)
	}

	rows, err := s.verses.VersesInChapter(ctx, bookID, chapter)
	if err != nil {
		return nil, fmt.Errorf("list verses: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("chapter %d:%d: %w", bookID, chapter, domain.ErrNotFound)
	}

	verses := make([]domain.Verse, len(rows))
	for i, row := range rows {
		verses[i] = domain.Verse{
			Number: row.Verse,
			Words:  annotate.Text(row.Text, s.lexicon),
		}
	}

	s.log.DebugContext(ctx, "chapter annotated",
		"book", bookID,
		"chapter", chapter,
		"verses", len(verses),
	)

	return &domain.Chapter{Book: book, Number: chapter, Verses: verses}, nil
}

// LookupStrongs returns the lexicon entry for a Strong's code such as
// "G2316" or "h430". Malformed codes are validation errors.
func (s *Service) LookupStrongs(code string) (*domain.LexiconEntry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCode(code) {
		return nil, domain.NewValidationError("code", "must be G or H followed by digits")
	}

	entry, ok := s.lexicon.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("strong's %s: %w", code, domain.ErrNotFound)
	}
	return entry, nil
}

func validCode(code string) bool {
	if len(code) < 2 || (code[0] != 'G' && code[0] != 'H') {
		return false
	}
	for _, r := range code[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
