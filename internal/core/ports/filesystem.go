package ports

// FileSystem defines the whole-file operations the patcher needs.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool

	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) (string, error)

	// WriteFile replaces the file at path with content, creating parent directories.
	WriteFile(path, content string) error
}
