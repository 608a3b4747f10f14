package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if m := a.Mode(); m != "" {
		return fmt.Sprintf("(%s) ", m)
	}
	return ""
}

// Root signs in, runs the start-up seeding, starts the connectivity
// watcher and then serves the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the contacts CLI (type 'help' for commands)")

	if err := a.Login(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
	a.startup(ctx)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// startup seeds an empty local cache and, when signed in, an empty server.
func (a *App) startup(ctx context.Context) {
	a.localSeeder.SeedPeople(ctx)
	if a.isLoggedIn() {
		a.webSeeder.SeedPeople(ctx)
	}
}
