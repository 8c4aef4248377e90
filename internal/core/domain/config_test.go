package domain_test

import (
	"testing"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "apps", cfg.AppsDir)
	assert.Equal(t, []string{"yarn"}, cfg.PackageManager)
	assert.Equal(t, []string{"nx"}, cfg.TaskRunner)
	assert.Equal(t, "serve", cfg.Target)
	require.NotNil(t, cfg.Generator.Routing)
	assert.True(t, *cfg.Generator.Routing)
	assert.Equal(t, []string{"quasar", "@quasar/extras"}, cfg.Dependencies)
	assert.Equal(t, []string{"@quasar/vite-plugin", "sass-embedded@^1.80.2"}, cfg.DevDependencies)
}

func TestConfig_Merge(t *testing.T) {
	routing := false
	cfg := domain.DefaultConfig()
	cfg.Merge(&domain.Config{
		PackageManager: []string{"pnpm"},
		Generator: domain.GeneratorOptions{
			Style:   "css",
			Routing: &routing,
		},
		DevDependencies: []string{},
	})

	assert.Equal(t, []string{"pnpm"}, cfg.PackageManager)
	assert.Equal(t, []string{"nx"}, cfg.TaskRunner)
	assert.Equal(t, "css", cfg.Generator.Style)
	assert.Equal(t, "vite", cfg.Generator.Bundler)
	assert.False(t, *cfg.Generator.Routing)
	assert.Equal(t, []string{"quasar", "@quasar/extras"}, cfg.Dependencies)
	assert.Empty(t, cfg.DevDependencies)

	cfg.Merge(nil)
	assert.Equal(t, []string{"pnpm"}, cfg.PackageManager)
}
