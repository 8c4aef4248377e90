package domain

import "time"

// PatchRecord is the journal entry written after a file has been patched.
type PatchRecord struct {
	Path      string       `json:"path,omitzero"`
	Hash      string       `json:"hash,omitzero"`
	Rules     []RuleResult `json:"rules,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitzero"`
}
