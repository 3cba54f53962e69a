// Package server initializes and runs the tripdiary backend: it wires the
// flat-file stores, the domain services and the HTTP API, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mvberkel/tripdiary/internal/filex"
	"github.com/mvberkel/tripdiary/internal/logging"
	"github.com/mvberkel/tripdiary/internal/server/config"
	"github.com/mvberkel/tripdiary/internal/server/httpapi"
	"github.com/mvberkel/tripdiary/internal/storage"
	"github.com/mvberkel/tripdiary/internal/server/trips"
	"github.com/mvberkel/tripdiary/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	tripService *trips.Service
	imagesDir   string
}

func NewApp(c *config.Config) (*App, error) {
	handler := slog.NewJSONHandler(os.Stdout, nil)
	logger := logging.NewSlogLogger(slog.New(handler))

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}
	imagesDir, err := filex.EnsureDir(filepath.Join(dataDir, "images"))
	if err != nil {
		return nil, fmt.Errorf("images dir init error: %w", err)
	}

	userStore := storage.NewJSONFileStore[users.User](filepath.Join(dataDir, "profiles.json"))
	tripStore := storage.NewJSONFileStore[trips.Trip](filepath.Join(dataDir, "trips.json"))

	us := users.NewService(users.NewStoreRepository(userStore), []byte(c.SecretKey), c.AccessTokenValidityDuration)
	ts := trips.NewService(trips.NewStoreRepository(tripStore))

	return &App{
		config:      c,
		logger:      logger,
		userService: us,
		tripService: ts,
		imagesDir:   imagesDir,
	}, nil
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

	app.logger.Info(ctx, "starting app", "addr", app.config.Addr, "data_dir", app.config.DataDir)

	app.initSignalHandler(cancelFunc)

	api := httpapi.NewAPI(app.logger, app.userService, app.tripService, app.imagesDir)
	srv := httpapi.NewServer(app.config.Addr, api, app.logger)

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
