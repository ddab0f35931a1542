// Package server exposes a single quiz session over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"quizdown/internal/quiz"
)

// Config captures the settings for serving the quiz API.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Convert        quiz.ConvertOptions
	Logger         zerolog.Logger
	// OnFinish runs after an advance finishes the session.
	OnFinish func(source string, session quiz.Session)
}

// Serve starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("server: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("server: addr is required")
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	cfg.Logger.Info().Str("addr", cfg.Addr).Msg("serving quiz api")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
