// Package app implements the application layer for nxkit.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/cpavlidis/nx-monorepo/internal/engine/patcher"
	"go.trai.ch/zerr"
)

// RunOptions holds the settings shared by every command.
type RunOptions struct {
	// Root is the workspace root. Empty means the current directory.
	Root string
	// ConfigPath is the configuration file, relative to Root unless absolute.
	ConfigPath string
	// DryRun prints external commands instead of running them.
	DryRun bool
	// Target overrides the configured task target for run and run-many.
	Target string
}

func (o RunOptions) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}

func (o RunOptions) configPath() string {
	path := o.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.root(), path)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestReader
	executor     ports.Executor
	dryRun       ports.Executor
	journals     ports.JournalOpener
	fs           ports.FileSystem
	patcher      *patcher.Patcher
	reporter     ports.Reporter
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestReader,
	executor ports.Executor,
	dryRun ports.Executor,
	journals ports.JournalOpener,
	fs ports.FileSystem,
	p *patcher.Patcher,
	reporter ports.Reporter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		executor:     executor,
		dryRun:       dryRun,
		journals:     journals,
		fs:           fs,
		patcher:      p,
		reporter:     reporter,
		logger:       logger,
		telemetry:    telemetry,
	}
}

func (a *App) executorFor(opts RunOptions) ports.Executor {
	if opts.DryRun {
		return a.dryRun
	}
	return a.executor
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.configPath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Run starts the configured target for exactly one project.
func (a *App) Run(ctx context.Context, opts RunOptions, projects []string) error {
	const example = "nxkit run project-name"
	switch {
	case len(projects) == 0:
		return &domain.UsageError{Message: "You must provide an app name.", Example: example}
	case len(projects) > 1:
		return &domain.UsageError{Message: "You can't provide more than one app names.", Example: example}
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	cmd := domain.NewCommand(cfg.TaskRunner, target(opts, cfg), projects[0]).In(opts.Root)
	return a.runTask(ctx, opts, cmd)
}

// RunMany starts the configured target for one or more projects in a single
// task-runner invocation.
func (a *App) RunMany(ctx context.Context, opts RunOptions, projects []string) error {
	if len(projects) == 0 {
		return &domain.UsageError{
			Message: "You must provide at least one app name.",
			Example: "nxkit run-many admin-layout user-layout",
		}
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	cmd := domain.NewCommand(cfg.TaskRunner,
		"run-many", "-t", target(opts, cfg), "-p", strings.Join(projects, ","),
	).In(opts.Root)
	return a.runTask(ctx, opts, cmd)
}

func (a *App) runTask(ctx context.Context, opts RunOptions, cmd domain.Command) error {
	ctx, vertex := a.telemetry.Record(ctx, cmd.String())
	a.reporter.Step("Running: " + cmd.String())

	err := a.executorFor(opts).Run(ctx, cmd)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "task runner failed")
	}
	return nil
}

func target(opts RunOptions, cfg *domain.Config) string {
	if opts.Target != "" {
		return opts.Target
	}
	return cfg.Target
}

// validateAppName rejects names that would escape the apps directory.
func validateAppName(name, example string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.UsageError{Message: "You must provide an app name.", Example: example}
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &domain.UsageError{
			Message: fmt.Sprintf("Invalid app name %q: it must be a single directory name.", name),
			Example: example,
		}
	}
	return nil
}

func (a *App) relative(opts RunOptions, path string) string {
	rel, err := filepath.Rel(opts.root(), path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
