package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cpavlidis/nx-monorepo/internal/adapters/telemetry"
	"github.com/cpavlidis/nx-monorepo/internal/app"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports/mocks"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"nxkit": func() { os.Exit(runMain()) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func componentsWith(t *testing.T, loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := app.New(
		loader,
		mocks.NewMockManifestReader(ctrl),
		mocks.NewMockExecutor(ctrl),
		mocks.NewMockExecutor(ctrl),
		nil,
		nil,
		nil,
		mocks.NewMockReporter(ctrl),
		log,
		telemetry.NewNoOp(),
	)
	return func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(a, log, telemetry.NewNoOp()), func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := componentsWith(t, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "nxkit version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_UsageError verifies that usage errors are printed verbatim without the logger.
func TestRun_UsageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := componentsWith(t, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run-many"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t,
		"✗ You must provide at least one app name.\nExample: nxkit run-many admin-layout user-layout\n",
		stderr.String())
}

// TestRun_ExecutionError verifies that other failures go through the logger.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	provider := componentsWith(t, loader, log)

	loadErr := errors.New("broken config")
	loader.EXPECT().Load(gomock.Any()).Return(nil, loadErr)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	exitCode := run(context.Background(), []string{"run", "admin"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
