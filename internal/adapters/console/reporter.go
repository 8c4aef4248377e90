// Package console implements the user-facing progress reporter.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/cpavlidis/nx-monorepo/internal/ui/output"
	"github.com/cpavlidis/nx-monorepo/internal/ui/style"
)

// Reporter implements ports.Reporter by writing one icon-prefixed line per
// message.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer

	step    lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

// NewReporter creates a Reporter writing to w (stdout when nil).
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return &Reporter{
		w:       w,
		step:    r.NewStyle().Foreground(style.Primary),
		success: r.NewStyle().Foreground(style.Positive),
		info:    r.NewStyle().Foreground(style.Info),
		warn:    r.NewStyle().Foreground(style.Warning),
		fail:    r.NewStyle().Foreground(style.Negative),
	}
}

// Step announces work that is about to start.
func (r *Reporter) Step(msg string) {
	r.print(r.step, style.Arrow, msg)
}

// Success reports a completed step.
func (r *Reporter) Success(msg string) {
	r.print(r.success, style.Check, msg)
}

// Info reports a neutral note.
func (r *Reporter) Info(msg string) {
	r.print(r.info, style.Tilde, msg)
}

// Warn reports a non-fatal problem.
func (r *Reporter) Warn(msg string) {
	r.print(r.warn, style.Bang, msg)
}

// Fail reports a step that could not be completed.
func (r *Reporter) Fail(msg string) {
	r.print(r.fail, style.Cross, msg)
}

func (r *Reporter) print(s lipgloss.Style, icon, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w, s.Render(icon)+" "+msg)
}
