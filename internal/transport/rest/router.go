package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warrenjonahb/bible-study-app/internal/transport/middleware"
)

// RouterDeps are the handlers and middleware mounted by NewRouter.
type RouterDeps struct {
	Bible      *BibleHandler
	Health     *HealthHandler
	Middleware []middleware.Middleware
}

// NewRouter builds the API router. Middleware run in the given order, the
// first being outermost, and also wrap the 404/405 fallbacks.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range deps.Middleware {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	r.Get("/", deps.Bible.Root)
	r.Get("/books", deps.Bible.Books)
	r.Get("/chapters/{bookID}", deps.Bible.Chapters)
	r.Get("/verses/{bookID}/{chapter}", deps.Bible.Verses)

	return r
}
