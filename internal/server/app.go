// Package server wires configuration, stores and the gRPC endpoint of the
// verifier and runs them until the process is told to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/zkpauth/internal/group"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/zkpauth/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/zkpauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	if err := group.Default.Validate(); err != nil {
		return nil, fmt.Errorf("group parameters: %w", err)
	}

	rm := repomanager.NewInMemoryRepositoryManager(group.Default.Q)
	as := services.NewAuthService(rm, c, logger)

	return &App{config: c, logger: logger, authService: as}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

func (app *App) warnInsecureConfig(ctx context.Context) {
	if app.config.UsesDefaultSecret() {
		app.logger.Warn(ctx, "session tokens are signed with the default secret key; set -s or secret_key")
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := app.initSignalHandler(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddrGRPC)
	app.warnInsecureConfig(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.config.SecretKey)
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			return err
		}
		return nil
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
