package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Lockfile represents a parsed, fully pinned lockfile: the transitive closure
// of a manifest's dependencies with exactly one version per package.
type Lockfile struct {
	// Pins maps the normalized package name to its pinned version.
	Pins map[string]string
}

// ParseLockfile parses the line-oriented resolver output format. Each entry
// line pins one package as "name==version"; blank lines, comment lines and
// resolver option lines (leading "-") are skipped, as are annotation comments
// trailing an entry. Package names are normalized to lower case.
func ParseLockfile(data []byte) (*Lockfile, error) {
	lf := &Lockfile{Pins: make(map[string]string)}

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		// Entries can be wrapped with a trailing backslash before their
		// annotation comment.
		line = strings.TrimSuffix(line, "\\")
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		name, version, ok := strings.Cut(line, "==")
		if !ok || name == "" || version == "" {
			err := zerr.With(ErrLockfileParseFailed, "line", i+1)
			return nil, zerr.With(err, "content", line)
		}

		// Environment markers ("; python_version < ...") are not part of the pin.
		if idx := strings.Index(version, ";"); idx >= 0 {
			version = strings.TrimSpace(version[:idx])
		}

		lf.Pins[normalizeName(name)] = strings.TrimSpace(version)
	}

	return lf, nil
}

// normalizeName lowers the package name and folds underscores and dots into
// hyphens, matching how the resolver canonicalizes names.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	// Strip an extras selector such as "uvicorn[standard]".
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// PinChange records one package whose pinned version changed between two
// lockfile generations.
type PinChange struct {
	Name string
	From string
	To   string
}

// LockfileDiff summarizes the changes between two lockfile generations.
type LockfileDiff struct {
	Added   []PinChange // From empty
	Removed []PinChange // To empty
	Changed []PinChange
}

// Empty reports whether the regeneration left every pin untouched.
func (d LockfileDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Diff compares the previous lockfile generation against the new one.
// Either side may be nil, which is treated as an empty pin set.
func Diff(prev, next *Lockfile) LockfileDiff {
	var d LockfileDiff

	prevPins := map[string]string{}
	if prev != nil {
		prevPins = prev.Pins
	}
	nextPins := map[string]string{}
	if next != nil {
		nextPins = next.Pins
	}

	for name, version := range nextPins {
		old, ok := prevPins[name]
		switch {
		case !ok:
			d.Added = append(d.Added, PinChange{Name: name, To: version})
		case old != version:
			d.Changed = append(d.Changed, PinChange{Name: name, From: old, To: version})
		}
	}
	for name, version := range prevPins {
		if _, ok := nextPins[name]; !ok {
			d.Removed = append(d.Removed, PinChange{Name: name, From: version})
		}
	}

	sortChanges(d.Added)
	sortChanges(d.Removed)
	sortChanges(d.Changed)
	return d
}

// Summary renders the diff as human-readable lines, one package per line.
func (d LockfileDiff) Summary() string {
	if d.Empty() {
		return "no pin changes"
	}

	var b strings.Builder
	for _, c := range d.Added {
		b.WriteString("+ " + c.Name + " " + c.To + "\n")
	}
	for _, c := range d.Changed {
		b.WriteString("~ " + c.Name + " " + c.From + " -> " + c.To + "\n")
	}
	for _, c := range d.Removed {
		b.WriteString("- " + c.Name + " " + c.From + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func sortChanges(changes []PinChange) {
	sort.Slice(changes, func(i, j int) bool { return changes[i].Name < changes[j].Name })
}
