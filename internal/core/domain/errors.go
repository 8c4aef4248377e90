package domain

import "go.trai.ch/zerr"

var (
	// ErrAppAlreadyExists is returned when the target application directory is already present.
	ErrAppAlreadyExists = zerr.New("app already exists")

	// ErrAppNotFound is returned when the application to patch does not exist.
	ErrAppNotFound = zerr.New("app not found")

	// ErrManifestNotFound is returned when no package.json exists at the workspace root.
	ErrManifestNotFound = zerr.New("no package.json found at the workspace root, are you in an Nx workspace?")

	// ErrInvalidManifest is returned when the package.json cannot be parsed.
	ErrInvalidManifest = zerr.New("invalid package.json")

	// ErrSourceNotFound is returned when a file to be patched is missing.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrInvalidDependency is returned when a dependency request cannot be parsed.
	ErrInvalidDependency = zerr.New("invalid dependency request")

	// ErrInvalidConstraint is returned when a dependency version constraint is not valid semver.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrEmptyCommand is returned when an executor is asked to run a command without a program.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)

// UsageError reports a command line that is missing or has extra arguments.
// Example holds a sample invocation printed alongside the message.
type UsageError struct {
	Message string
	Example string
}

func (e *UsageError) Error() string {
	if e.Example == "" {
		return e.Message
	}
	return e.Message + "\nExample: " + e.Example
}
