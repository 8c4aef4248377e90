package domain

// Manifest is the dependency section of a workspace package.json.
type Manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Has reports whether name is declared in either dependency section.
func (m *Manifest) Has(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// CheckDependencies partitions reqs into those already declared in the manifest
// and those missing from it. Presence is decided by name only; the requested
// constraint is ignored.
func CheckDependencies(m *Manifest, reqs []DependencyRequest) (present, missing []DependencyRequest) {
	for _, req := range reqs {
		if m.Has(req.Name) {
			present = append(present, req)
			continue
		}
		missing = append(missing, req)
	}
	return present, missing
}
