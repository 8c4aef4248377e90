package domain

// RuleOutcome describes what a patch rule did to a buffer.
type RuleOutcome string

const (
	// RuleApplied indicates the rule changed the buffer.
	RuleApplied RuleOutcome = "applied"
	// RuleSkipped indicates the rule found its own marker and did not run.
	RuleSkipped RuleOutcome = "skipped"
	// RuleAnchorMissed indicates the rule ran but its anchor was not found.
	RuleAnchorMissed RuleOutcome = "anchor-missed"
)

// Rule is a guarded find/replace step over a whole text buffer.
type Rule struct {
	// Name identifies the rule in logs and the patch journal.
	Name string

	// Applied reports whether the buffer already carries the rule's effect.
	// A nil Applied marks an unguarded rule whose trigger pattern stops
	// matching once it has fired.
	Applied func(buf string) bool

	// Apply transforms the buffer. It returns the input unchanged when its
	// anchor cannot be found.
	Apply func(buf string) string
}

// RuleResult records the outcome of a single rule.
type RuleResult struct {
	Rule    string      `json:"rule"`
	Outcome RuleOutcome `json:"outcome"`
}

// ApplyRules runs rules over buf in order and returns the final buffer along
// with one result per rule.
func ApplyRules(buf string, rules []Rule) (string, []RuleResult) {
	results := make([]RuleResult, 0, len(rules))
	for _, r := range rules {
		if r.Applied != nil && r.Applied(buf) {
			results = append(results, RuleResult{Rule: r.Name, Outcome: RuleSkipped})
			continue
		}

		next := r.Apply(buf)
		if next == buf {
			outcome := RuleAnchorMissed
			if r.Applied == nil {
				// An unguarded rule that no longer matches has already fired.
				outcome = RuleSkipped
			}
			results = append(results, RuleResult{Rule: r.Name, Outcome: outcome})
			continue
		}

		buf = next
		results = append(results, RuleResult{Rule: r.Name, Outcome: RuleApplied})
	}
	return buf, results
}

// Missed returns the names of rules whose anchor was not found.
func Missed(results []RuleResult) []string {
	var names []string
	for _, r := range results {
		if r.Outcome == RuleAnchorMissed {
			names = append(names, r.Rule)
		}
	}
	return names
}

// Changed reports whether any rule modified the buffer.
func Changed(results []RuleResult) bool {
	for _, r := range results {
		if r.Outcome == RuleApplied {
			return true
		}
	}
	return false
}
