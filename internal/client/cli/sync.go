package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrOffline = errors.New("not connected to the server, use login")

func (a *App) requireOnline() error {
	if !a.isLoggedIn() || a.Mode() != ModeOnline {
		return ErrOffline
	}
	return nil
}

func (a *App) Push(ctx context.Context) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	res, err := a.sync.Push(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Pushed %d people, %d photos uploaded, %d failures\n", res.People, res.Images, res.Failed)
	return nil
}

func (a *App) Pull(ctx context.Context) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	res, err := a.sync.Pull(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Pulled %d people, %d photos downloaded, %d failures\n", res.People, res.Images, res.Failed)
	return nil
}

func (a *App) SeedLocal(ctx context.Context) error {
	if a.localSeeder.SeedPeople(ctx) {
		fmt.Fprintln(a.out, "Local cache seeded")
	} else {
		fmt.Fprintln(a.out, "Local cache not seeded (already has people or failed, see log)")
	}
	return nil
}

func (a *App) SeedRemote(ctx context.Context) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	if a.webSeeder.SeedPeople(ctx) {
		fmt.Fprintln(a.out, "Server seeded")
	} else {
		fmt.Fprintln(a.out, "Server not seeded (already has people or failed, see log)")
	}
	return nil
}

// Info prints the local person count and the sync bookkeeping.
func (a *App) Info(ctx context.Context) error {
	count, err := a.people.Count(ctx).Get()
	if err != nil {
		return err
	}
	values, err := a.meta.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "mode: %s\n", a.Mode())
	fmt.Fprintf(a.out, "people: %d\n", count)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s: %s\n", k, values[k])
	}
	return nil
}
