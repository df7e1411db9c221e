// Package server wires the Loan Gate backend together: configuration,
// logging, the Postgres store, the federated identity verifier, the
// application services and the HTTP endpoint, with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/loangate/loangate/internal/logging"
	"github.com/loangate/loangate/internal/server/config"
	"github.com/loangate/loangate/internal/server/federated"
	"github.com/loangate/loangate/internal/server/httpapi"
	"github.com/loangate/loangate/internal/server/repositories/repomanager"
	"github.com/loangate/loangate/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens := services.NewTokenService(cfg)
	identity := services.NewIdentityService(db, rm, verifier, tokens, cfg)
	profiles := services.NewProfileService(db, rm)
	loans := services.NewLoanService(db, rm)
	documents := services.NewDocumentService(db, rm, cfg)

	server := httpapi.NewServer(identity, tokens, profiles, loans, documents,
		logger.With("module", "httpapi"))

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

// newVerifier connects to the OIDC issuer when an audience is configured;
// without one the federated routes stay up but reject every assertion.
func newVerifier(ctx context.Context, cfg *config.Config) (federated.Verifier, error) {
	if cfg.OIDCAudience == "" {
		return federated.Unconfigured{}, nil
	}

	v, err := federated.NewOIDCVerifier(ctx, federated.Config{
		IssuerURL: cfg.OIDCIssuer,
		Audience:  cfg.OIDCAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("oidc init error: %w", err)
	}
	return v, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	httpServer := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown error: %w", err)
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close error: %w", err)
	}

	app.logger.Info(ctx, "app stopped")
	return nil
}
