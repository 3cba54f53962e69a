package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mvberkel/tripdiary/internal/client/cache"
)

func (a *App) getStatus() string {
	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// restoreSession picks up a previously signed-in user from the local shadow
// so the CLI starts logged in after a restart.
func (a *App) restoreSession(ctx context.Context) {
	shadow, err := a.authService.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrNoCachedUser) {
			log.Printf("could not read local session: %s", err.Error())
		}
		return
	}
	a.email = shadow.Email
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the trip diary CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
