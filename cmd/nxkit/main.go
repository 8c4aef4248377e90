// Package main is the entry point for the nxkit workspace tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cpavlidis/nx-monorepo/cmd/nxkit/commands"
	"github.com/cpavlidis/nx-monorepo/internal/app"
	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/ui/style"
	_ "github.com/cpavlidis/nx-monorepo/internal/wiring"
	"github.com/grindlemire/graft"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents)
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Telemetry.Close(); err != nil {
			c.Logger.Warn("telemetry not flushed: " + err.Error())
		}
	}, nil
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		var usage *domain.UsageError
		if errors.As(err, &usage) {
			_, _ = fmt.Fprintln(stderr, style.Cross+" "+usage.Error())
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
