package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/okian/ftracker/internal/adapters/http/api"
	"github.com/okian/ftracker/internal/adapters/http/swagger"
	app "github.com/okian/ftracker/internal/app"
	"github.com/okian/ftracker/internal/config"
	"github.com/okian/ftracker/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Get().Error(ctx, "ftracker failed", logger.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run configures logging from cfg and either prints the reports of the
// configured packages to out or serves the HTTP API until ctx is done.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if strings.EqualFold(cfg.LogFormat, "json") {
		if err := logger.Init(logger.WithJSON(true)); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(app.WithLogger(log.Named("service")))

	if !cfg.Serve {
		return svc.Run(ctx, cfg.Packages, out)
	}
	var docs []swagger.Option
	if cfg.RedocBundle != "" {
		js, err := os.ReadFile(cfg.RedocBundle)
		if err != nil {
			return fmt.Errorf("read redoc bundle: %w", err)
		}
		docs = append(docs, swagger.WithRedocBundle(js))
	}
	return serve(ctx, cfg.Addr, svc, log, docs...)
}

func serve(ctx context.Context, addr string, svc *app.Service, log logger.Logger, docs ...swagger.Option) error {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux, docs...)
	api.NewServer(svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info(ctx, "server stopped")
	return nil
}
