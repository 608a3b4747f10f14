package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
)

// getSecret is an indirection so tests avoid the terminal.
var getSecret = GetSecret

// Login signs in with the configured API key, prompting for one when none
// is configured. An unreachable server leaves the client in offline mode
// and is not reported as an error.
func (a *App) Login(ctx context.Context) error {
	key := a.config.APIKey
	if key == "" {
		var err error
		key, err = getSecret(a.reader, "Enter API key", a.out)
		if err != nil {
			return err
		}
	}

	err := a.authService.Login(ctx, key)
	switch {
	case err == nil:
		a.logger.Info(ctx, "login successful")
		a.setMode(ModeOnline)
		return nil
	case errors.Is(err, client.ErrUnavailable):
		a.logger.Warn(ctx, "server unavailable, working offline")
		a.setMode(ModeOffline)
		return nil
	default:
		a.setMode(ModeOffline)
		return fmt.Errorf("login unsuccessful: %w", err)
	}
}
