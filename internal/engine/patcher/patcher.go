// Package patcher applies guarded text rules to generated source files and
// keeps a journal of what it changed.
package patcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes the outcome of patching a single file.
type Result struct {
	Path  string
	Rules []domain.RuleResult
	// Written reports whether the file was rewritten.
	Written bool
	// UpToDate reports that the journal already holds the file's current
	// content, so no rule was evaluated.
	UpToDate bool
}

// Missed returns the names of rules whose anchor was not found.
func (r *Result) Missed() []string {
	return domain.Missed(r.Rules)
}

// Patcher reads a file, runs it through a rule list and writes it back only
// if it changed.
type Patcher struct {
	fs      ports.FileSystem
	hasher  ports.Hasher
	logger  ports.Logger
	journal ports.PatchJournal
	now     func() time.Time
}

// New creates a new Patcher without a journal.
func New(fs ports.FileSystem, hasher ports.Hasher, logger ports.Logger) *Patcher {
	return &Patcher{
		fs:     fs,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// WithJournal returns a copy of p that records its work in journal.
func (p *Patcher) WithJournal(journal ports.PatchJournal) *Patcher {
	cp := *p
	cp.journal = journal
	return &cp
}

// Patch applies rules to the file at path.
//
// A missing file yields domain.ErrSourceNotFound and nothing is written.
// Rules whose anchor is missing are logged as warnings and do not fail the patch.
func (p *Patcher) Patch(path string, rules []domain.Rule) (*Result, error) {
	if !p.fs.Exists(path) {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "cannot patch file"), "path", path)
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if rec := p.lookup(path); rec != nil && rec.Hash == p.hasher.HashContent(content) {
		return &Result{Path: path, Rules: rec.Rules, UpToDate: true}, nil
	}

	out, results := domain.ApplyRules(content, rules)
	res := &Result{Path: path, Rules: results}

	for _, name := range domain.Missed(results) {
		p.logger.Warn(fmt.Sprintf("%s: anchor for rule %q not found, rule skipped", path, name))
	}

	if domain.Changed(results) {
		if err := p.fs.WriteFile(path, out); err != nil {
			return nil, err
		}
		res.Written = true
	}

	p.record(domain.PatchRecord{
		Path:      path,
		Hash:      p.hasher.HashContent(out),
		Rules:     results,
		Timestamp: p.now(),
	})

	return res, nil
}

// EnsureFile writes content to path unless a file already exists there.
// It reports whether the file was created.
func (p *Patcher) EnsureFile(path, content string) (bool, error) {
	if p.fs.Exists(path) {
		return false, nil
	}
	if err := p.fs.WriteFile(path, content); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Patcher) lookup(path string) *domain.PatchRecord {
	if p.journal == nil {
		return nil
	}
	rec, err := p.journal.Get(path)
	if err != nil {
		p.logger.Warn("patch journal unreadable: " + err.Error())
		return nil
	}
	return rec
}

func (p *Patcher) record(rec domain.PatchRecord) {
	if p.journal == nil {
		return
	}
	if err := p.journal.Put(rec); err != nil {
		p.logger.Warn("patch journal not updated: " + err.Error())
	}
}

// Summary renders rule outcomes as "name=outcome" pairs.
func Summary(results []domain.RuleResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Rule + "=" + string(r.Outcome)
	}
	return strings.Join(parts, " ")
}
