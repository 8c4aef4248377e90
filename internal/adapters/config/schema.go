package config

import "github.com/cpavlidis/nx-monorepo/internal/core/domain"

// Nxkitfile represents the structure of the nxkit.yaml configuration file.
type Nxkitfile struct {
	Version         string       `yaml:"version"`
	AppsDir         string       `yaml:"appsDir"`
	Manifest        string       `yaml:"manifest"`
	PackageManager  []string     `yaml:"packageManager"`
	TaskRunner      []string     `yaml:"taskRunner"`
	Target          string       `yaml:"target"`
	Generator       GeneratorDTO `yaml:"generator"`
	Dependencies    []string     `yaml:"dependencies"`
	DevDependencies []string     `yaml:"devDependencies"`
}

// GeneratorDTO represents the generator section of the configuration.
type GeneratorDTO struct {
	Plugin         string `yaml:"plugin"`
	Style          string `yaml:"style"`
	Bundler        string `yaml:"bundler"`
	Routing        *bool  `yaml:"routing"`
	Linter         string `yaml:"linter"`
	UnitTestRunner string `yaml:"unitTestRunner"`
	E2ETestRunner  string `yaml:"e2eTestRunner"`
}

func (f *Nxkitfile) toDomain() *domain.Config {
	return &domain.Config{
		AppsDir:        f.AppsDir,
		Manifest:       f.Manifest,
		PackageManager: f.PackageManager,
		TaskRunner:     f.TaskRunner,
		Target:         f.Target,
		Generator: domain.GeneratorOptions{
			Plugin:         f.Generator.Plugin,
			Style:          f.Generator.Style,
			Bundler:        f.Generator.Bundler,
			Routing:        f.Generator.Routing,
			Linter:         f.Generator.Linter,
			UnitTestRunner: f.Generator.UnitTestRunner,
			E2ETestRunner:  f.Generator.E2ETestRunner,
		},
		Dependencies:    f.Dependencies,
		DevDependencies: f.DevDependencies,
	}
}
