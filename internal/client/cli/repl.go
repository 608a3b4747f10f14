package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Photo(ctx context.Context, args []string) error
	Push(ctx context.Context) error
	Pull(ctx context.Context) error
	SeedLocal(ctx context.Context) error
	SeedRemote(ctx context.Context) error
	Info(ctx context.Context) error
}

const (
	helpOnline  = "Available commands: (l)ist, show, add, edit, delete, photo, push, pull, seed, seedremote, info, exit"
	helpOffline = "Available commands: login, (l)ist, show, add, edit, delete, photo, seed, info, exit"
)

// runREPL reads commands from reader until EOF or exit/quit. Errors
// returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "contacts %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpOnline)
			} else {
				fmt.Fprintln(w, helpOffline)
			}
		case "login":
			cmdErr = a.Login(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "photo":
			cmdErr = a.Photo(ctx, args)
		case "push":
			cmdErr = a.Push(ctx)
		case "pull":
			cmdErr = a.Pull(ctx)
		case "seed":
			cmdErr = a.SeedLocal(ctx)
		case "seedremote":
			cmdErr = a.SeedRemote(ctx)
		case "info":
			cmdErr = a.Info(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
