// Package annotate turns tagged verse text into lexicon-enriched words.
//
// Verse text is a sequence of whitespace-separated tokens, some carrying an
// inline Strong's tag directly after the word: "God{H430}", "θεός{G2316}".
// Each token becomes exactly one word, in order; parsing never fails.
package annotate

import (
	"regexp"
	"strings"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

var (
	// strongsTag captures the first well-formed code in a token.
	strongsTag = regexp.MustCompile(`\{([GH]\d+)\}`)
	// braced matches any bracketed span, well-formed or not.
	braced = regexp.MustCompile(`\{.*?\}`)
)

// Lexicon resolves a Strong's code to its entry.
type Lexicon interface {
	Lookup(code string) (*domain.LexiconEntry, bool)
}

// Text annotates every token of text. The result has one word per
// whitespace-separated token; an empty or blank text yields an empty slice.
func Text(text string, lex Lexicon) []domain.AnnotatedWord {
	tokens := strings.Fields(text)
	words := make([]domain.AnnotatedWord, len(tokens))
	for i, tok := range tokens {
		words[i] = Token(tok, lex)
	}
	return words
}

// Token annotates a single token. Only the first G/H tag is captured; every
// bracketed span is removed from the display text, so "{G1}{H2}" displays as
// "" with code G1, and "love{Z99}" displays as "love" with no code.
func Token(tok string, lex Lexicon) domain.AnnotatedWord {
	word := domain.AnnotatedWord{Text: braced.ReplaceAllString(tok, "")}

	m := strongsTag.FindStringSubmatch(tok)
	if m == nil {
		return word
	}
	code := m[1]
	word.Strongs = &code

	if lex == nil {
		return word
	}
	entry, ok := lex.Lookup(code)
	if !ok {
		return word
	}

	word.Lemma = entry.Lemma
	word.Definition = entry.StrongsDef
	word.KJVDef = entry.KJVDef
	if tr, ok := entry.Transliteration(); ok {
		word.Translit = &tr
	}
	return word
}
