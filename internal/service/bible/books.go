package bible

import (
	"fmt"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

// ListBooks returns every book in canonical order.
func (s *Service) ListBooks() []domain.Book {
	return s.books.Books()
}

// ResolveBook finds a book by numeric ID, name or OSIS abbreviation.
func (s *Service) ResolveBook(ref string) (domain.Book, error) {
	b, ok := s.books.FindBook(ref)
	if !ok {
		return domain.Book{}, fmt.Errorf("book %q: %w", ref, domain.ErrNotFound)
	}
	return b, nil
}
