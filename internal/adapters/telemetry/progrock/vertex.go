package progrock

import (
	"fmt"
	"io"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/vito/progrock"
)

// Vertex is a single recorded scaffold step.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the step's output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log appends msg to the step. Warnings and errors land on its error stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

// Complete finishes the step, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached finishes the step as one that had nothing to do.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
