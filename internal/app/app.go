package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/warrenjonahb/bible-study-app/internal/config"
	"github.com/warrenjonahb/bible-study-app/internal/domain"
	"github.com/warrenjonahb/bible-study-app/internal/lexicon"
	"github.com/warrenjonahb/bible-study-app/internal/service/bible"
	"github.com/warrenjonahb/bible-study-app/internal/transport/middleware"
	"github.com/warrenjonahb/bible-study-app/internal/transport/rest"
)

// App is the assembled HTTP application: lexicon, verse store, query service
// and router.
type App struct {
	cfg        *config.Config
	log        *slog.Logger
	handler    http.Handler
	limiter    *middleware.RateLimiter
	closeStore func()
}

// Run is the application entry point. It loads configuration, initializes
// the logger, assembles the application and serves HTTP until ctx is done.
// Any startup failure is returned before the listener opens.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New loads the lexicon, opens the verse store and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	lex, err := lexicon.Load(cfg.Lexicon.GreekPath, cfg.Lexicon.HebrewPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	greek, hebrew := lex.Len()
	logger.Info("lexicon loaded", slog.Int("greek", greek), slog.Int("hebrew", hebrew))

	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open verse store: %w", err)
	}

	svc := bible.NewService(logger, store, lex, domain.Canon{})

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Bible: rest.NewBibleHandler(svc, logger),
		Health: rest.NewHealthHandler(store, cfg.Storage.Driver,
			rest.LexiconStats{Greek: greek, Hebrew: hebrew}, BuildVersion()),
		Middleware: mws,
	})

	return &App{
		cfg:        cfg,
		log:        logger,
		handler:    handler,
		limiter:    limiter,
		closeStore: closeStore,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close stops background work and releases the verse store.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.closeStore()
}

// Serve listens on the configured address until ctx is done, then shuts the
// server down within Server.ShutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
