// Package config provides the configuration loader for nxkit.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only configuration schema version understood.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and merges it over the defaults.
// A missing file yields the defaults unchanged.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(zerr.New("unsupported config version"), "version", file.Version)
	}

	cfg.Merge(file.toDomain())

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded configuration from " + filepath.Base(path))
	}

	return cfg, nil
}

func parse(data []byte) (*Nxkitfile, error) {
	var file Nxkitfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return &file, nil
}

func validate(cfg *domain.Config) error {
	if strings.TrimSpace(cfg.AppsDir) == "" || filepath.IsAbs(cfg.AppsDir) {
		return zerr.With(zerr.New("appsDir must be a relative path"), "apps_dir", cfg.AppsDir)
	}
	if len(cfg.PackageManager) == 0 || cfg.PackageManager[0] == "" {
		return zerr.New("packageManager must name a program")
	}
	if len(cfg.TaskRunner) == 0 || cfg.TaskRunner[0] == "" {
		return zerr.New("taskRunner must name a program")
	}
	if _, err := domain.ParseDependencyRequests(cfg.Dependencies); err != nil {
		return err
	}
	if _, err := domain.ParseDependencyRequests(cfg.DevDependencies); err != nil {
		return err
	}
	return nil
}
