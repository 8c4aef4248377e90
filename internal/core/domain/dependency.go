package domain

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// distTagPattern matches npm dist-tags such as "latest" or "next".
var distTagPattern = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// DependencyRequest is a package the scaffold wants declared in the manifest.
type DependencyRequest struct {
	// Name is the package name, including its scope (e.g. "@quasar/extras").
	Name string

	// Constraint is the optional version constraint (e.g. "^1.80.2").
	Constraint string
}

// ParseDependencyRequest parses "name" or "name@constraint". Scoped names keep
// their leading "@".
func ParseDependencyRequest(raw string) (DependencyRequest, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DependencyRequest{}, invalidRequest(raw)
	}

	req := DependencyRequest{Name: raw}
	if idx := strings.LastIndex(raw, "@"); idx > 0 {
		req.Name = raw[:idx]
		req.Constraint = raw[idx+1:]
		if req.Constraint == "" {
			return DependencyRequest{}, invalidRequest(raw)
		}
	}

	if strings.HasPrefix(req.Name, "@") {
		scope, pkg, ok := strings.Cut(req.Name[1:], "/")
		if !ok || scope == "" || pkg == "" {
			return DependencyRequest{}, invalidRequest(raw)
		}
	}

	if req.Constraint != "" && !distTagPattern.MatchString(req.Constraint) {
		if _, err := semver.NewConstraint(req.Constraint); err != nil {
			return DependencyRequest{}, zerr.With(zerr.Wrap(errors.Join(ErrInvalidConstraint, err), "cannot parse dependency"), "request", raw)
		}
	}

	return req, nil
}

func invalidRequest(raw string) error {
	return zerr.With(zerr.Wrap(ErrInvalidDependency, "cannot parse dependency"), "request", raw)
}

// ParseDependencyRequests parses every entry of raw, stopping at the first error.
func ParseDependencyRequests(raw []string) ([]DependencyRequest, error) {
	reqs := make([]DependencyRequest, 0, len(raw))
	for _, r := range raw {
		req, err := ParseDependencyRequest(r)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// String returns the request in the form package managers accept.
func (r DependencyRequest) String() string {
	if r.Constraint == "" {
		return r.Name
	}
	return r.Name + "@" + r.Constraint
}

// DependencyNames renders reqs for display or for a package manager argv.
func DependencyNames(reqs []DependencyRequest) []string {
	names := make([]string, len(reqs))
	for i, r := range reqs {
		names[i] = r.String()
	}
	return names
}
