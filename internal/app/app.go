package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wikisynset/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/wikisynset/internal/adapter/wordnet"
	"github.com/heartmarshall/wikisynset/internal/config"
	"github.com/heartmarshall/wikisynset/internal/rules"
	"github.com/heartmarshall/wikisynset/internal/service/resolver"
	"github.com/heartmarshall/wikisynset/internal/transport/middleware"
	"github.com/heartmarshall/wikisynset/internal/transport/rest"
)

// Run is the HTTP service entry point. It loads configuration and the rule
// tables, builds the WordNet taxonomy and the Wikipedia client, wires the
// resolver service behind the REST handlers, and serves until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting wikisynset",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ruleSet, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return err
	}

	db, err := wordnet.Load(cfg.WordNet.Dir)
	if err != nil {
		return err
	}
	stats := db.Stats()
	logger.Info("wordnet corpus loaded",
		slog.Int("lemmas", stats.Lemmas),
		slog.Int("synsets", stats.Synsets),
		slog.Int("exceptions", stats.Exceptions),
	)

	wiki := wikipedia.NewClient(cfg.Wikipedia, logger)
	svc := resolver.NewService(logger, wiki, db, ruleSet)

	mux := http.NewServeMux()
	resolveHandler := rest.NewResolveHandler(svc, db, logger)
	healthHandler := rest.NewHealthHandler(BuildVersion(), stats.Synsets)
	mux.HandleFunc("GET /v1/resolve", resolveHandler.Resolve)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
