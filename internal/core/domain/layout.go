package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".nxkit"

	// JournalFileName is the name of the patch journal inside the state directory.
	JournalFileName = "patches.json"

	// StepsFileName is the name of the step log of the last scaffold command.
	StepsFileName = "steps.json"

	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = "nxkit.yaml"

	// EntryPointFile is the application entry point, relative to the app directory.
	EntryPointFile = "src/main.ts"

	// BuildConfigFile is the bundler configuration, relative to the app directory.
	BuildConfigFile = "vite.config.ts"

	// VariablesFile is the stylesheet variables file, relative to the app directory.
	VariablesFile = "src/quasar-variables.scss"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves the paths an application scaffold touches.
type Layout struct {
	Root    string
	AppsDir string
	App     string
}

// AppDir returns the directory of the application.
func (l Layout) AppDir() string {
	return filepath.Join(l.Root, l.AppsDir, l.App)
}

// AppRelDir returns the application directory relative to the workspace root,
// in the form the generator expects (always slash separated).
func (l Layout) AppRelDir() string {
	return filepath.ToSlash(filepath.Join(l.AppsDir, l.App))
}

// EntryPoint returns the path of the application entry point.
func (l Layout) EntryPoint() string {
	return filepath.Join(l.AppDir(), filepath.FromSlash(EntryPointFile))
}

// BuildConfig returns the path of the bundler configuration.
func (l Layout) BuildConfig() string {
	return filepath.Join(l.AppDir(), BuildConfigFile)
}

// Variables returns the path of the stylesheet variables file.
func (l Layout) Variables() string {
	return filepath.Join(l.AppDir(), filepath.FromSlash(VariablesFile))
}

// DefaultJournalPath returns the patch journal location for a workspace root.
func DefaultJournalPath(root string) string {
	return filepath.Join(root, StateDirName, JournalFileName)
}

// DefaultStepsPath returns the step log location for a workspace root.
func DefaultStepsPath(root string) string {
	return filepath.Join(root, StateDirName, StepsFileName)
}
