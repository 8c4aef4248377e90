package domain

// GeneratorOptions are the flags passed to the Nx application generator.
type GeneratorOptions struct {
	Plugin         string `yaml:"plugin"`
	Style          string `yaml:"style"`
	Bundler        string `yaml:"bundler"`
	Routing        *bool  `yaml:"routing"`
	Linter         string `yaml:"linter"`
	UnitTestRunner string `yaml:"unitTestRunner"`
	E2ETestRunner  string `yaml:"e2eTestRunner"`
}

// Config holds the workspace settings for scaffolding and running apps.
type Config struct {
	AppsDir         string           `yaml:"appsDir"`
	Manifest        string           `yaml:"manifest"`
	PackageManager  []string         `yaml:"packageManager"`
	TaskRunner      []string         `yaml:"taskRunner"`
	Target          string           `yaml:"target"`
	Generator       GeneratorOptions `yaml:"generator"`
	Dependencies    []string         `yaml:"dependencies"`
	DevDependencies []string         `yaml:"devDependencies"`
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() *Config {
	routing := true
	return &Config{
		AppsDir:        "apps",
		Manifest:       "package.json",
		PackageManager: []string{"yarn"},
		TaskRunner:     []string{"nx"},
		Target:         "serve",
		Generator: GeneratorOptions{
			Plugin:         "@nx/vue:app",
			Style:          "scss",
			Bundler:        "vite",
			Routing:        &routing,
			Linter:         "eslint",
			UnitTestRunner: "none",
			E2ETestRunner:  "none",
		},
		Dependencies:    []string{"quasar", "@quasar/extras"},
		DevDependencies: []string{"@quasar/vite-plugin", "sass-embedded@^1.80.2"},
	}
}

// Merge overlays the non-empty fields of o onto c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.AppsDir != "" {
		c.AppsDir = o.AppsDir
	}
	if o.Manifest != "" {
		c.Manifest = o.Manifest
	}
	if len(o.PackageManager) > 0 {
		c.PackageManager = o.PackageManager
	}
	if len(o.TaskRunner) > 0 {
		c.TaskRunner = o.TaskRunner
	}
	if o.Target != "" {
		c.Target = o.Target
	}
	if o.Dependencies != nil {
		c.Dependencies = o.Dependencies
	}
	if o.DevDependencies != nil {
		c.DevDependencies = o.DevDependencies
	}

	g := o.Generator
	if g.Plugin != "" {
		c.Generator.Plugin = g.Plugin
	}
	if g.Style != "" {
		c.Generator.Style = g.Style
	}
	if g.Bundler != "" {
		c.Generator.Bundler = g.Bundler
	}
	if g.Routing != nil {
		c.Generator.Routing = g.Routing
	}
	if g.Linter != "" {
		c.Generator.Linter = g.Linter
	}
	if g.UnitTestRunner != "" {
		c.Generator.UnitTestRunner = g.UnitTestRunner
	}
	if g.E2ETestRunner != "" {
		c.Generator.E2ETestRunner = g.E2ETestRunner
	}
}
