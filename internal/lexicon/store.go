// Package lexicon holds the Greek and Hebrew Strong's dictionaries. A Store is
// built once at startup and is read-only afterwards, so it can be shared by
// any number of goroutines without locking.
package lexicon

import "github.com/warrenjonahb/bible-study-app/internal/domain"

// Store dispatches Strong's codes to the Greek or Hebrew dictionary by prefix.
type Store struct {
	greek  map[string]domain.LexiconEntry
	hebrew map[string]domain.LexiconEntry
}

// New creates a Store over the given dictionaries. The maps must not be
// modified after the call.
func New(greek, hebrew map[string]domain.LexiconEntry) *Store {
	if greek == nil {
		greek = map[string]domain.LexiconEntry{}
	}
	if hebrew == nil {
		hebrew = map[string]domain.LexiconEntry{}
	}
	return &Store{greek: greek, hebrew: hebrew}
}

// Lookup returns the entry for code. Codes starting with "G" are looked up in
// the Greek dictionary, "H" in the Hebrew one; anything else, including the
// empty string, is absent. Matching is exact and case-sensitive.
func (s *Store) Lookup(code string) (*domain.LexiconEntry, bool) {
	if code == "" {
		return nil, false
	}

	var dict map[string]domain.LexiconEntry
	switch code[0] {
	case 'G':
		dict = s.greek
	case 'H':
		dict = s.hebrew
	default:
		return nil, false
	}

	entry, ok := dict[code]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Len returns the number of Greek and Hebrew entries.
func (s *Store) Len() (greek, hebrew int) {
	return len(s.greek), len(s.hebrew)
}
