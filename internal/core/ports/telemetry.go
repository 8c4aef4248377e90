package ports

import (
	"context"
	"io"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
)

// Telemetry records the progress of scaffold steps.
type Telemetry interface {
	// Record starts a new vertex for a named step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Save writes a summary of the steps recorded so far to path.
	Save(path string) error
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single recorded step.
type Vertex interface {
	// Stdout returns a writer for the step's output stream.
	Stdout() io.Writer
	// Log records a message associated with this step.
	Log(level domain.LogLevel, msg string)
	// Complete marks the step as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the step as having had nothing to do.
	Cached()
}
