package main

import (
	"encoding/json"
	"io"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

type bookView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	OSIS string `json:"osis"`
}

type chaptersView struct {
	Book     int   `json:"book"`
	Chapters []int `json:"chapters"`
}

type chapterView struct {
	Book    int         `json:"book"`
	Chapter int         `json:"chapter"`
	Verses  []verseView `json:"verses"`
}

type verseView struct {
	Verse int        `json:"verse"`
	Words []wordView `json:"words"`
}

type wordView struct {
	Text     string  `json:"text"`
	Strongs  *string `json:"strongs"`
	Lemma    *string `json:"lemma"`
	Translit *string `json:"translit"`
	Def      *string `json:"def"`
	KJVDef   *string `json:"kjv_def"`
}

type entryView struct {
	Code     string  `json:"code"`
	Lemma    *string `json:"lemma"`
	Translit *string `json:"translit"`
	Def      *string `json:"def"`
	KJVDef   *string `json:"kjv_def"`
}

func toChapterView(ch *domain.Chapter) chapterView {
	verses := make([]verseView, len(ch.Verses))
	for i, v := range ch.Verses {
		words := make([]wordView, len(v.Words))
		for j, w := range v.Words {
			words[j] = wordView{
				Text:     w.Text,
				Strongs:  w.Strongs,
				Lemma:    w.Lemma,
				Translit: w.Translit,
				Def:      w.Definition,
				KJVDef:   w.KJVDef,
			}
		}
		verses[i] = verseView{Verse: v.Number, Words: words}
	}
	return chapterView{Book: ch.Book.ID, Chapter: ch.Number, Verses: verses}
}

func toEntryView(e *domain.LexiconEntry) entryView {
	v := entryView{Code: e.Code, Lemma: e.Lemma, Def: e.StrongsDef, KJVDef: e.KJVDef}
	if t, ok := e.Transliteration(); ok {
		v.Translit = &t
	}
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
