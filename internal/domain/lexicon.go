package domain

// TransliterationFields lists the entry fields that may carry a transliteration,
// in lookup order. The Greek dataset uses "translit"; the Hebrew one uses
// "xlit" and "pron".
var TransliterationFields = []string{"translit", "xlit", "pron"}

// LexiconEntry is an immutable Strong's lexicon record, keyed by Code (e.g. "G2316").
type LexiconEntry struct {
	Code       string
	Lemma      *string
	StrongsDef *string
	KJVDef     *string

	// Transliterations holds every transliteration-like field found in the
	// source, keyed by its original field name. Use Transliteration to read it.
	Transliterations map[string]string
}

// Transliteration returns the first field of TransliterationFields present on
// the entry, or false when none is.
func (e *LexiconEntry) Transliteration() (string, bool) {
	for _, field := range TransliterationFields {
		if v, ok := e.Transliterations[field]; ok {
			return v, true
		}
	}
	return "", false
}
