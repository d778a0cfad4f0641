package domain

// VerseRow is one stored verse: raw text with inline Strong's tags such as
// "God{H430}".
type VerseRow struct {
	Book    int
	Chapter int
	Verse   int
	Text    string
}

// AnnotatedWord is a display word with its optional lexicon reference.
// Strongs is set whenever the token carried a well-formed tag; the remaining
// pointers are set only when the lexicon resolved that code.
type AnnotatedWord struct {
	Text       string
	Strongs    *string
	Lemma      *string
	Translit   *string
	Definition *string
	KJVDef     *string
}

// Verse is a verse number with its annotated words in reading order.
type Verse struct {
	Number int
	Words  []AnnotatedWord
}

// Chapter is the annotated content of one chapter.
type Chapter struct {
	Book   Book
	Number int
	Verses []Verse
}

// ChapterList is the set of chapter numbers available for a book.
type ChapterList struct {
	Book     Book
	Chapters []int
}
