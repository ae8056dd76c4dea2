// Package server wires the application together: configuration, database,
// repositories, use-case services, and the HTTP endpoint, plus graceful
// shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/forumauth/internal/logging"
	"github.com/dmitrijs2005/forumauth/internal/server/config"
	"github.com/dmitrijs2005/forumauth/internal/server/httpapi"
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/forumauth/internal/server/security"
	"github.com/dmitrijs2005/forumauth/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	passwordHash := security.NewBcryptPasswordHash(cfg.BcryptCost)
	tokenManager := security.NewJwtTokenManager(
		[]byte(cfg.AccessTokenKey), []byte(cfg.RefreshTokenKey),
		cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration,
	)

	userService := services.NewUserService(repos.Users(), passwordHash)
	authService := services.NewAuthenticationService(
		repos.Users(), repos.Authentications(), passwordHash, tokenManager)

	srv := httpapi.NewServer(cfg.Address, logger, userService, authService)

	return &App{config: cfg, logger: logger, repos: repos, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.Address)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
