package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
	"github.com/warrenjonahb/bible-study-app/pkg/ctxutil"
)

// bibleService defines the minimal interface needed by BibleHandler.
type bibleService interface {
	ListBooks() []domain.Book
	ListChapters(ctx context.Context, bookID int) (*domain.ChapterList, error)
	ListVerses(ctx context.Context, bookID, chapter int) (*domain.Chapter, error)
}

// BibleHandler serves the book, chapter and verse endpoints.
type BibleHandler struct {
	svc bibleService
	log *slog.Logger
}

// NewBibleHandler creates a BibleHandler.
func NewBibleHandler(svc bibleService, logger *slog.Logger) *BibleHandler {
	return &BibleHandler{svc: svc, log: logger.With("handler", "bible")}
}

type rootResponse struct {
	Message string `json:"message"`
}

type bookResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type chaptersResponse struct {
	Book     int   `json:"book"`
	Chapters []int `json:"chapters"`
}

type versesResponse struct {
	Book    int             `json:"book"`
	Chapter int             `json:"chapter"`
	Verses  []verseResponse `json:"verses"`
}

type verseResponse struct {
	Verse int            `json:"verse"`
	Words []wordResponse `json:"words"`
}

// wordResponse keeps absent lexicon fields as explicit nulls.
type wordResponse struct {
	Text     string  `json:"text"`
	Strongs  *string `json:"strongs"`
	Lemma    *string `json:"lemma"`
	Translit *string `json:"translit"`
	Def      *string `json:"def"`
	KJVDef   *string `json:"kjv_def"`
}

// Root handles GET /.
func (h *BibleHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: "Bible backend is running!"})
}

// Books handles GET /books.
func (h *BibleHandler) Books(w http.ResponseWriter, r *http.Request) {
	books := h.svc.ListBooks()
	resp := make([]bookResponse, len(books))
	for i, b := range books {
		resp[i] = bookResponse{ID: b.ID, Name: b.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Chapters handles GET /chapters/{bookID}.
func (h *BibleHandler) Chapters(w http.ResponseWriter, r *http.Request) {
	bookID, err := intParam(r, "bookID")
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	list, err := h.svc.ListChapters(r.Context(), bookID)
	if err != nil {
		h.handleError(w, r, err, "Book not found")
		return
	}

	writeJSON(w, http.StatusOK, chaptersResponse{Book: list.Book.ID, Chapters: list.Chapters})
}

// Verses handles GET /verses/{bookID}/{chapter}.
func (h *BibleHandler) Verses(w http.ResponseWriter, r *http.Request) {
	bookID, err := intParam(r, "bookID")
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	chapter, err := intParam(r, "chapter")
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	ch, err := h.svc.ListVerses(r.Context(), bookID, chapter)
	if err != nil {
		h.handleError(w, r, err, "No verses found")
		return
	}

	writeJSON(w, http.StatusOK, toVersesResponse(ch))
}

func (h *BibleHandler) handleError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful can be written.
		ctxutil.Logger(r.Context(), h.log).DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		ctxutil.Logger(r.Context(), h.log).ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func toVersesResponse(ch *domain.Chapter) versesResponse {
	verses := make([]verseResponse, len(ch.Verses))
	for i, v := range ch.Verses {
		words := make([]wordResponse, len(v.Words))
		for j, w := range v.Words {
			words[j] = wordResponse{
				Text:     w.Text,
				Strongs:  w.Strongs,
				Lemma:    w.Lemma,
				Translit: w.Translit,
				Def:      w.Definition,
				KJVDef:   w.KJVDef,
			}
		}
		verses[i] = verseResponse{Verse: v.Number, Words: words}
	}
	return versesResponse{Book: ch.Book.ID, Chapter: ch.Number, Verses: verses}
}
