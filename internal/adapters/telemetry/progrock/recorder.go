// Package progrock records scaffold steps as vertices on a progrock tape.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder implements ports.Telemetry on top of a progrock recorder. Every
// update also feeds a step log that Save persists.
type Recorder struct {
	log *stepLog
	rec *progrock.Recorder

	mu  sync.Mutex
	seq int
}

// New creates a Recorder writing to an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	log := newStepLog(w)
	return &Recorder{log: log, rec: progrock.NewRecorder(log)}
}

// Record opens a vertex for the named step. Steps sharing a name still get
// distinct vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	r.seq++
	id := digest.FromString(strconv.Itoa(r.seq) + "/" + name)
	r.mu.Unlock()

	return ctx, &Vertex{vertex: r.rec.Vertex(id, name)}
}

// Steps returns a summary of every step recorded so far.
func (r *Recorder) Steps() []domain.StepRecord {
	return r.log.Steps()
}

// Save writes the step summary to path.
func (r *Recorder) Save(path string) error {
	return r.log.save(path)
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	return r.log.Close()
}
