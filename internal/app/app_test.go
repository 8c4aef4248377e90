package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpavlidis/nx-monorepo/internal/adapters/cas"
	"github.com/cpavlidis/nx-monorepo/internal/adapters/fs"
	"github.com/cpavlidis/nx-monorepo/internal/adapters/telemetry/progrock"
	"github.com/cpavlidis/nx-monorepo/internal/app"
	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports/mocks"
	"github.com/cpavlidis/nx-monorepo/internal/engine/patcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	generatedMain = "import { createApp } from 'vue';\n" +
		"import App from './app/App.vue';\n" +
		"const app = createApp(App);\n" +
		"app.mount('#root');\n"

	generatedVite = "import { defineConfig } from 'vite';\n" +
		"import vue from '@vitejs/plugin-vue';\n" +
		"export default defineConfig({\n" +
		"  plugins: [vue()],\n" +
		"});\n"
)

type fixture struct {
	root      string
	opts      app.RunOptions
	loader    *mocks.MockConfigLoader
	manifests *mocks.MockManifestReader
	executor  *mocks.MockExecutor
	dryRun    *mocks.MockExecutor
	reporter  *mocks.MockReporter
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		root:      t.TempDir(),
		loader:    mocks.NewMockConfigLoader(ctrl),
		manifests: mocks.NewMockManifestReader(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		dryRun:    mocks.NewMockExecutor(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.opts = app.RunOptions{Root: f.root}

	fsys := fs.NewFileSystem()
	f.app = app.New(
		f.loader,
		f.manifests,
		f.executor,
		f.dryRun,
		cas.Opener{},
		fsys,
		patcher.New(fsys, fs.NewHasher(), f.logger),
		f.reporter,
		f.logger,
		progrock.New(),
	)
	return f
}

func (f *fixture) expectConfig() {
	f.loader.EXPECT().Load(filepath.Join(f.root, domain.ConfigFileName)).Return(domain.DefaultConfig(), nil)
}

func (f *fixture) quietReporter() {
	f.reporter.EXPECT().Step(gomock.Any()).AnyTimes()
	f.reporter.EXPECT().Success(gomock.Any()).AnyTimes()
	f.reporter.EXPECT().Info(gomock.Any()).AnyTimes()
}

func (f *fixture) appPath(parts ...string) string {
	return filepath.Join(append([]string{f.root, "apps", "admin"}, parts...)...)
}

func (f *fixture) writeGenerated(t *testing.T) {
	t.Helper()
	require.NoError(t, os.MkdirAll(f.appPath("src"), 0o750))
	require.NoError(t, os.WriteFile(f.appPath("src", "main.ts"), []byte(generatedMain), 0o600))
	require.NoError(t, os.WriteFile(f.appPath("vite.config.ts"), []byte(generatedVite), 0o600))
}

func (f *fixture) savedSteps(t *testing.T) []domain.StepRecord {
	t.Helper()
	data, err := os.ReadFile(domain.DefaultStepsPath(f.root))
	require.NoError(t, err)

	var steps []domain.StepRecord
	require.NoError(t, json.Unmarshal(data, &steps))
	return steps
}

func command(root, name string, args ...string) domain.Command {
	return domain.Command{Name: name, Args: args, Dir: root}
}

func generateCommand(root string) domain.Command {
	return command(root, "yarn", "nx", "g", "@nx/vue:app", "apps/admin",
		"--style=scss",
		"--bundler=vite",
		"--routing=true",
		"--linter=eslint",
		"--unitTestRunner=none",
		"--e2eTestRunner=none",
		"--interactive=false",
	)
}

func requireUsageError(t *testing.T, err error, message string) {
	t.Helper()
	var usage *domain.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, message, usage.Message)
	assert.NotEmpty(t, usage.Example)
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()

	cmd := command(f.root, "nx", "serve", "admin")
	f.reporter.EXPECT().Step("Running: nx serve admin")
	f.executor.EXPECT().Run(gomock.Any(), cmd).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), f.opts, []string{"admin"}))
}

func TestApp_Run_TargetOverride(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.opts.Target = "build"

	f.reporter.EXPECT().Step("Running: nx build admin")
	f.executor.EXPECT().Run(gomock.Any(), command(f.root, "nx", "build", "admin")).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), f.opts, []string{"admin"}))
}

func TestApp_Run_Arity(t *testing.T) {
	tests := []struct {
		name     string
		projects []string
		message  string
	}{
		{name: "none", projects: nil, message: "You must provide an app name."},
		{name: "two", projects: []string{"a", "b"}, message: "You can't provide more than one app names."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.app.Run(context.Background(), f.opts, tt.projects)
			requireUsageError(t, err, tt.message)
		})
	}
}

func TestApp_Run_CommandFails(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()

	f.reporter.EXPECT().Step(gomock.Any())
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

	err := f.app.Run(context.Background(), f.opts, []string{"admin"})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestApp_RunMany(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()

	cmd := command(f.root, "nx", "run-many", "-t", "serve", "-p", "admin-layout,user-layout")
	f.reporter.EXPECT().Step("Running: nx run-many -t serve -p admin-layout,user-layout")
	f.executor.EXPECT().Run(gomock.Any(), cmd).Return(nil)

	err := f.app.RunMany(context.Background(), f.opts, []string{"admin-layout", "user-layout"})
	require.NoError(t, err)
}

func TestApp_RunMany_DryRun(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.opts.DryRun = true

	f.reporter.EXPECT().Step(gomock.Any())
	f.dryRun.EXPECT().Run(gomock.Any(), command(f.root, "nx", "run-many", "-t", "serve", "-p", "a")).Return(nil)

	require.NoError(t, f.app.RunMany(context.Background(), f.opts, []string{"a"}))
}

func TestApp_RunMany_NoProjects(t *testing.T) {
	f := newFixture(t)

	err := f.app.RunMany(context.Background(), f.opts, nil)
	requireUsageError(t, err, "You must provide at least one app name.")
}

func TestApp_Create_InvalidName(t *testing.T) {
	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			err := f.app.Create(context.Background(), f.opts, name)
			var usage *domain.UsageError
			require.ErrorAs(t, err, &usage)
		})
	}
}

func TestApp_Create_AppExists(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	require.NoError(t, os.MkdirAll(f.appPath(), 0o750))

	err := f.app.Create(context.Background(), f.opts, "admin")
	require.ErrorIs(t, err, domain.ErrAppAlreadyExists)
}

func TestApp_Create_ManifestMissing(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.manifests.EXPECT().Read(filepath.Join(f.root, "package.json")).Return(nil, domain.ErrManifestNotFound)

	err := f.app.Create(context.Background(), f.opts, "admin")
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestApp_Create(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.quietReporter()

	f.manifests.EXPECT().Read(filepath.Join(f.root, "package.json")).Return(&domain.Manifest{
		Dependencies:    map[string]string{"quasar": "^2.17.0"},
		DevDependencies: map[string]string{"@quasar/vite-plugin": "^1.8.0"},
	}, nil)

	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), command(f.root, "yarn", "add", "-W", "@quasar/extras")),
		f.executor.EXPECT().Run(gomock.Any(), command(f.root, "yarn", "add", "-D", "-W", "sass-embedded@^1.80.2")),
		f.executor.EXPECT().Run(gomock.Any(), generateCommand(f.root)).
			DoAndReturn(func(_ context.Context, _ domain.Command) error {
				f.writeGenerated(t)
				return nil
			}),
	)

	require.NoError(t, f.app.Create(context.Background(), f.opts, "admin"))

	main, err := os.ReadFile(f.appPath("src", "main.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "import { Quasar } from 'quasar';")
	assert.Contains(t, string(main), "app.use(Quasar, {")

	vite, err := os.ReadFile(f.appPath("vite.config.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(vite), "vue({ template: { transformAssetUrls } })")
	assert.Contains(t, string(vite), "quasar({")

	vars, err := os.ReadFile(f.appPath("src", "quasar-variables.scss"))
	require.NoError(t, err)
	assert.Equal(t, patcher.VariablesContent, string(vars))

	assert.FileExists(t, domain.DefaultJournalPath(f.root))

	steps := f.savedSteps(t)
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name
		assert.Equal(t, domain.StepDone, step.State, step.Name)
	}
	assert.Equal(t, []string{
		"install runtime dependencies",
		"install dev dependencies",
		"generate apps/admin",
		"patch apps/admin/src/main.ts",
		"patch apps/admin/vite.config.ts",
	}, names)
}

func TestApp_Create_AllInstalled(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()

	f.manifests.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{
		Dependencies: map[string]string{"quasar": "^2", "@quasar/extras": "^1"},
		DevDependencies: map[string]string{
			"@quasar/vite-plugin": "^1",
			"sass-embedded":       "^1.80.2",
		},
	}, nil)

	f.reporter.EXPECT().Info("All runtime dependencies already installed.")
	f.reporter.EXPECT().Info("All dev dependencies already installed.")
	f.reporter.EXPECT().Step("Generating Nx Vue 3 app: admin")
	f.reporter.EXPECT().Success(`Nx Vue app "admin" created.`)
	f.reporter.EXPECT().Fail("main.ts not found at apps/admin/src/main.ts")
	f.reporter.EXPECT().Fail("vite.config.ts not found at apps/admin/vite.config.ts")

	f.executor.EXPECT().Run(gomock.Any(), generateCommand(f.root)).Return(nil)

	require.NoError(t, f.app.Create(context.Background(), f.opts, "admin"))
	assert.NoFileExists(t, f.appPath("src", "quasar-variables.scss"))
}

func TestApp_Create_InstallFails(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.quietReporter()

	f.manifests.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{}, nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.Join(domain.ErrCommandFailed, errors.New("exit status 1")))

	err := f.app.Create(context.Background(), f.opts, "admin")
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Contains(t, err.Error(), "failed to install runtime dependencies")
}

func TestApp_Create_DryRun(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.opts.DryRun = true

	f.manifests.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{}, nil)
	f.reporter.EXPECT().Step(gomock.Any()).Times(3)
	f.reporter.EXPECT().Info("would patch apps/admin/src/main.ts")
	f.reporter.EXPECT().Info("would patch apps/admin/vite.config.ts")
	f.reporter.EXPECT().Info("would patch apps/admin/src/quasar-variables.scss")
	f.dryRun.EXPECT().Run(gomock.Any(), gomock.Any()).Times(3).Return(nil)

	require.NoError(t, f.app.Create(context.Background(), f.opts, "admin"))
	assert.NoDirExists(t, f.appPath())
	assert.NoFileExists(t, domain.DefaultJournalPath(f.root))
	assert.NoFileExists(t, domain.DefaultStepsPath(f.root))
}

func TestApp_Patch_SecondRunIsUpToDate(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil).Times(2)
	f.writeGenerated(t)

	gomock.InOrder(
		f.reporter.EXPECT().Success("Quasar added to main.ts in admin"),
		f.reporter.EXPECT().Success("Quasar added to vite.config.ts in admin"),
		f.reporter.EXPECT().Success("Created quasar-variables.scss in admin/src"),
		f.reporter.EXPECT().Info("main.ts is already up to date."),
		f.reporter.EXPECT().Info("vite.config.ts is already up to date."),
		f.reporter.EXPECT().Info("quasar-variables.scss already exists."),
	)

	require.NoError(t, f.app.Patch(context.Background(), f.opts, "admin"))
	patched, err := os.ReadFile(f.appPath("vite.config.ts"))
	require.NoError(t, err)

	require.NoError(t, f.app.Patch(context.Background(), f.opts, "admin"))
	again, err := os.ReadFile(f.appPath("vite.config.ts"))
	require.NoError(t, err)
	assert.Equal(t, string(patched), string(again))

	steps := f.savedSteps(t)
	require.Len(t, steps, 4)
	assert.Equal(t, domain.StepDone, steps[0].State)
	assert.Equal(t, domain.StepDone, steps[1].State)
	assert.Equal(t, domain.StepCached, steps[2].State)
	assert.Equal(t, domain.StepCached, steps[3].State)
}

func TestApp_Patch_HandEditedFileIsRechecked(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil).Times(2)
	f.writeGenerated(t)
	f.reporter.EXPECT().Success(gomock.Any()).Times(3)
	require.NoError(t, f.app.Patch(context.Background(), f.opts, "admin"))

	main, err := os.ReadFile(f.appPath("src", "main.ts"))
	require.NoError(t, err)
	edited := "// edited by hand\n" + string(main)
	require.NoError(t, os.WriteFile(f.appPath("src", "main.ts"), []byte(edited), 0o600))

	f.reporter.EXPECT().Info("main.ts already contains Quasar.")
	f.reporter.EXPECT().Info("vite.config.ts is already up to date.")
	f.reporter.EXPECT().Info("quasar-variables.scss already exists.")
	require.NoError(t, f.app.Patch(context.Background(), f.opts, "admin"))

	got, err := os.ReadFile(f.appPath("src", "main.ts"))
	require.NoError(t, err)
	assert.Equal(t, edited, string(got))
}

func TestApp_Patch_AppNotFound(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()

	err := f.app.Patch(context.Background(), f.opts, "admin")
	require.ErrorIs(t, err, domain.ErrAppNotFound)
	assert.NoFileExists(t, domain.DefaultStepsPath(f.root))
}

func TestApp_Patch_DryRun(t *testing.T) {
	f := newFixture(t)
	f.expectConfig()
	f.opts.DryRun = true
	f.writeGenerated(t)

	f.reporter.EXPECT().Info("would patch apps/admin/src/main.ts")
	f.reporter.EXPECT().Info("would patch apps/admin/vite.config.ts")
	f.reporter.EXPECT().Info("would patch apps/admin/src/quasar-variables.scss")

	require.NoError(t, f.app.Patch(context.Background(), f.opts, "admin"))

	main, err := os.ReadFile(f.appPath("src", "main.ts"))
	require.NoError(t, err)
	assert.Equal(t, generatedMain, string(main))
	assert.NoDirExists(t, filepath.Join(f.root, domain.StateDirName))
}

func TestApp_Patch_InvalidName(t *testing.T) {
	f := newFixture(t)

	err := f.app.Patch(context.Background(), f.opts, "../admin")
	var usage *domain.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "nxkit patch admin", usage.Example)
}
