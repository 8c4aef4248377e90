package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/engine/patcher"
	"go.trai.ch/zerr"
)

// errPatchSkipped marks a patch step abandoned because its file is missing.
var errPatchSkipped = errors.New("patch skipped")

// Create scaffolds a Quasar-enabled Vue application: it installs missing
// packages, runs the Nx generator and patches the generated sources.
//
// A missing entry point or build config is reported and the remaining steps
// still run. Failing external commands abort the sequence.
func (a *App) Create(ctx context.Context, opts RunOptions, name string) error {
	if err := validateAppName(name, "nxkit create admin"); err != nil {
		return err
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	layout := domain.Layout{Root: opts.root(), AppsDir: cfg.AppsDir, App: name}
	if a.fs.Exists(layout.AppDir()) {
		return zerr.With(
			zerr.Wrap(domain.ErrAppAlreadyExists, fmt.Sprintf("cannot create app %q", name)),
			"path", layout.AppDir(),
		)
	}

	manifest, err := a.manifests.Read(filepath.Join(layout.Root, cfg.Manifest))
	if err != nil {
		return err
	}

	deps, err := domain.ParseDependencyRequests(cfg.Dependencies)
	if err != nil {
		return err
	}
	devDeps, err := domain.ParseDependencyRequests(cfg.DevDependencies)
	if err != nil {
		return err
	}

	if !opts.DryRun {
		defer a.saveSteps(opts)
	}

	_, missing := domain.CheckDependencies(manifest, deps)
	if err := a.install(ctx, opts, cfg, "runtime dependencies", missing, "add", "-W"); err != nil {
		return err
	}

	_, missing = domain.CheckDependencies(manifest, devDeps)
	if err := a.install(ctx, opts, cfg, "dev dependencies", missing, "add", "-D", "-W"); err != nil {
		return err
	}

	if err := a.generate(ctx, opts, cfg, layout); err != nil {
		return err
	}

	if opts.DryRun {
		a.reportWouldPatch(opts, layout)
		return nil
	}

	return a.applyQuasar(ctx, opts, layout)
}

// Patch re-applies the Quasar rules to an existing application. Files whose
// content still matches the patch journal are reported as up to date and
// left untouched.
func (a *App) Patch(ctx context.Context, opts RunOptions, name string) error {
	if err := validateAppName(name, "nxkit patch admin"); err != nil {
		return err
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	layout := domain.Layout{Root: opts.root(), AppsDir: cfg.AppsDir, App: name}
	if !a.fs.Exists(layout.AppDir()) {
		return zerr.With(
			zerr.Wrap(domain.ErrAppNotFound, fmt.Sprintf("cannot patch app %q", name)),
			"path", layout.AppDir(),
		)
	}

	if opts.DryRun {
		a.reportWouldPatch(opts, layout)
		return nil
	}

	defer a.saveSteps(opts)
	return a.applyQuasar(ctx, opts, layout)
}

// applyQuasar patches the entry point and the build config, then writes the
// variables file. A missing build config skips the variables file.
func (a *App) applyQuasar(ctx context.Context, opts RunOptions, layout domain.Layout) error {
	p := a.patcher
	if journal, err := a.journals.Open(domain.DefaultJournalPath(layout.Root)); err != nil {
		a.logger.Warn("patch journal unavailable: " + err.Error())
	} else {
		p = p.WithJournal(journal)
	}

	if err := a.patchFile(ctx, opts, p, layout, layout.EntryPoint(), patcher.EntryPointRules()); err != nil &&
		!errors.Is(err, errPatchSkipped) {
		return err
	}

	err := a.patchFile(ctx, opts, p, layout, layout.BuildConfig(), patcher.BuildConfigRules())
	switch {
	case errors.Is(err, errPatchSkipped):
		return nil
	case err != nil:
		return err
	}

	return a.writeVariables(opts, p, layout)
}

func (a *App) reportWouldPatch(opts RunOptions, layout domain.Layout) {
	for _, path := range []string{layout.EntryPoint(), layout.BuildConfig(), layout.Variables()} {
		a.reporter.Info("would patch " + a.relative(opts, path))
	}
}

// saveSteps persists the step log next to the patch journal.
func (a *App) saveSteps(opts RunOptions) {
	if err := a.telemetry.Save(domain.DefaultStepsPath(opts.root())); err != nil {
		a.logger.Warn("step log not saved: " + err.Error())
	}
}

func (a *App) install(
	ctx context.Context,
	opts RunOptions,
	cfg *domain.Config,
	kind string,
	missing []domain.DependencyRequest,
	args ...string,
) error {
	ctx, vertex := a.telemetry.Record(ctx, "install "+kind)

	if len(missing) == 0 {
		a.reporter.Info("All " + kind + " already installed.")
		vertex.Cached()
		return nil
	}

	names := domain.DependencyNames(missing)
	a.reporter.Step("Installing " + kind + ": " + strings.Join(names, ", "))

	cmd := domain.NewCommand(cfg.PackageManager, slices.Concat(args, names)...).In(opts.Root)
	err := a.executorFor(opts).Run(ctx, cmd)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to install "+kind)
	}
	return nil
}

func (a *App) generate(ctx context.Context, opts RunOptions, cfg *domain.Config, layout domain.Layout) error {
	ctx, vertex := a.telemetry.Record(ctx, "generate "+layout.AppRelDir())
	a.reporter.Step("Generating Nx Vue 3 app: " + layout.App)

	cmd := domain.NewCommand(cfg.PackageManager, generatorArgs(cfg, layout)...).In(opts.Root)
	err := a.executorFor(opts).Run(ctx, cmd)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to generate app")
	}

	if !opts.DryRun {
		a.reporter.Success(fmt.Sprintf("Nx Vue app %q created.", layout.App))
	}
	return nil
}

// generatorArgs builds "<taskRunner...> g <plugin> <appsDir>/<app> --flags".
func generatorArgs(cfg *domain.Config, layout domain.Layout) []string {
	g := cfg.Generator
	routing := true
	if g.Routing != nil {
		routing = *g.Routing
	}

	args := make([]string, 0, len(cfg.TaskRunner)+10)
	args = append(args, cfg.TaskRunner...)
	return append(args,
		"g", g.Plugin, layout.AppRelDir(),
		"--style="+g.Style,
		"--bundler="+g.Bundler,
		"--routing="+strconv.FormatBool(routing),
		"--linter="+g.Linter,
		"--unitTestRunner="+g.UnitTestRunner,
		"--e2eTestRunner="+g.E2ETestRunner,
		"--interactive=false",
	)
}

// patchFile runs rules over path. A missing file is reported and yields
// errPatchSkipped so that the caller can carry on.
func (a *App) patchFile(
	ctx context.Context,
	opts RunOptions,
	p *patcher.Patcher,
	layout domain.Layout,
	path string,
	rules []domain.Rule,
) error {
	rel := a.relative(opts, path)
	_, vertex := a.telemetry.Record(ctx, "patch "+rel)

	res, err := p.Patch(path, rules)
	if err != nil {
		vertex.Complete(err)
		if errors.Is(err, domain.ErrSourceNotFound) {
			a.reporter.Fail(fmt.Sprintf("%s not found at %s", filepath.Base(path), rel))
			return errPatchSkipped
		}
		return zerr.Wrap(err, "failed to patch "+rel)
	}

	vertex.Log(domain.LogLevelInfo, patcher.Summary(res.Rules))
	for _, rule := range res.Missed() {
		vertex.Log(domain.LogLevelWarn, "anchor not found for "+rule)
	}

	switch {
	case res.UpToDate:
		a.reporter.Info(filepath.Base(path) + " is already up to date.")
		vertex.Cached()
		return nil
	case res.Written:
		a.reporter.Success(fmt.Sprintf("Quasar added to %s in %s", filepath.Base(path), layout.App))
	default:
		a.reporter.Info(filepath.Base(path) + " already contains Quasar.")
	}
	vertex.Complete(nil)
	return nil
}

func (a *App) writeVariables(opts RunOptions, p *patcher.Patcher, layout domain.Layout) error {
	created, err := p.EnsureFile(layout.Variables(), patcher.VariablesContent)
	if err != nil {
		return zerr.Wrap(err, "failed to create "+a.relative(opts, layout.Variables()))
	}
	base := filepath.Base(layout.Variables())
	if created {
		a.reporter.Success(fmt.Sprintf("Created %s in %s/src", base, layout.App))
	} else {
		a.reporter.Info(base + " already exists.")
	}
	return nil
}
