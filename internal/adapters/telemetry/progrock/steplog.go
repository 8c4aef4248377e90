package progrock

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

var _ progrock.Writer = (*stepLog)(nil)

// stepLog folds the status updates it sees into one record per vertex and
// forwards every update to next.
type stepLog struct {
	next progrock.Writer

	mu    sync.Mutex
	order []string
	steps map[string]*domain.StepRecord
}

func newStepLog(next progrock.Writer) *stepLog {
	return &stepLog{next: next, steps: make(map[string]*domain.StepRecord)}
}

// WriteStatus records u and passes it on.
func (l *stepLog) WriteStatus(u *progrock.StatusUpdate) error {
	l.mu.Lock()
	for _, v := range u.GetVertexes() {
		step := l.step(v.GetId())
		step.Name = v.GetName()
		step.Error = v.GetError()
		switch {
		case step.Error != "":
			step.State = domain.StepFailed
		case v.GetCached():
			step.State = domain.StepCached
		case v.GetCompleted() != nil:
			step.State = domain.StepDone
		default:
			step.State = domain.StepRunning
		}
	}
	for _, entry := range u.GetLogs() {
		step := l.step(entry.GetVertex())
		text := strings.TrimRight(string(entry.GetData()), "\n")
		if text != "" {
			step.Logs = append(step.Logs, strings.Split(text, "\n")...)
		}
	}
	l.mu.Unlock()

	return l.next.WriteStatus(u)
}

// Close closes next when it supports it.
func (l *stepLog) Close() error {
	if c, ok := l.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Steps returns the recorded steps in the order they first appeared.
func (l *stepLog) Steps() []domain.StepRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.StepRecord, 0, len(l.order))
	for _, id := range l.order {
		step := *l.steps[id]
		step.Logs = append([]string(nil), step.Logs...)
		out = append(out, step)
	}
	return out
}

// save writes the recorded steps to path as indented JSON.
func (l *stepLog) save(path string) error {
	data, err := json.MarshalIndent(l.Steps(), "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal step log")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for step log"), "path", path)
	}

	//nolint:gosec // Path is derived from the workspace root
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write step log"), "path", path)
	}
	return nil
}

// step returns the record for id, creating it on first sight. Callers hold mu.
func (l *stepLog) step(id string) *domain.StepRecord {
	if s, ok := l.steps[id]; ok {
		return s
	}
	s := &domain.StepRecord{State: domain.StepRunning}
	l.steps[id] = s
	l.order = append(l.order, id)
	return s
}
