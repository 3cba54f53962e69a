package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mvberkel/tripdiary/internal/client/cache"
	"github.com/mvberkel/tripdiary/internal/client/client"
	"github.com/mvberkel/tripdiary/internal/client/config"
	"github.com/mvberkel/tripdiary/internal/client/groups"
	"github.com/mvberkel/tripdiary/internal/client/notifications"
	"github.com/mvberkel/tripdiary/internal/client/services"
	"github.com/mvberkel/tripdiary/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	tripService   services.TripService
	groups        *groups.Service
	notifications *notifications.Service
	email         string
	Mode          Mode
	reader        *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	shadowCache := cache.NewFileCache(filepath.Join(dataDir, "user.json"))

	return &App{
		config:        c,
		authService:   services.NewAuthService(apiClient, shadowCache),
		tripService:   services.NewTripService(apiClient),
		groups:        groups.NewFileService(filepath.Join(dataDir, "groups.json")),
		notifications: notifications.NewService(filepath.Join(dataDir, "notifications.json")),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// connectivity mode when reachability changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
