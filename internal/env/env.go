// Package env builds the Environment Snapshot used as the substitution
// source for a materialization pass. The snapshot is captured once, up
// front, from an explicit environ slice. The materializer never reads the
// process environment ambiently, which keeps the core testable without
// mutating real process state.
package env

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identifierPattern matches shell identifier rules for variable names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name is a legal substitution variable name.
func ValidName(name string) bool {
	return identifierPattern.MatchString(name)
}

// Filter selects which process-environment entries may serve as substitution
// sources. With no names, no prefixes, and All false, the filter permits
// nothing: an unconfigured snapshot substitutes nothing rather than leaking
// the whole environment into publicly served files.
type Filter struct {
	// Names is an explicit allow-list of variable names.
	Names []string
	// Prefixes permits any variable whose name starts with one of these
	// (e.g. "VITE_", "REACT_APP_").
	Prefixes []string
	// All permits every identifier-shaped variable. Opt-in.
	All bool
}

// Empty reports whether the filter permits nothing.
func (f Filter) Empty() bool {
	return !f.All && len(f.Names) == 0 && len(f.Prefixes) == 0
}

func (f Filter) permits(name string) bool {
	if f.All {
		return true
	}
	for _, n := range f.Names {
		if name == n {
			return true
		}
	}
	for _, p := range f.Prefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Snapshot is an immutable name→value mapping. The zero value is an empty
// snapshot.
type Snapshot struct {
	values map[string]string
}

// NewSnapshot copies values into a snapshot, dropping entries whose name
// does not satisfy identifier rules.
func NewSnapshot(values map[string]string) Snapshot {
	m := make(map[string]string, len(values))
	for k, v := range values {
		if ValidName(k) {
			m[k] = v
		}
	}
	return Snapshot{values: m}
}

// Lookup returns the value for name and whether it is present.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Names returns the entry names in sorted order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Capture parses environ entries of the form "KEY=VALUE" into a map.
// Entries whose name fails identifier rules are dropped; entries without
// an "=" are ignored.
func Capture(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !ValidName(key) {
			continue
		}
		result[key] = value
	}
	return result
}

// Resolve builds the snapshot from layered sources. Precedence, lowest to
// highest: env files < process environ < static overrides. The filter
// governs the process-environ layer only: env files and overrides are
// explicit operator input and are always included.
//
// Returns the snapshot plus warnings for allow-listed names that ended up
// with no value. The front-end would display the raw placeholder for
// those, so they are worth surfacing before the server starts.
func Resolve(environ []string, envFiles []string, overrides map[string]string, filter Filter) (Snapshot, []string, error) {
	result := make(map[string]string)
	var warnings []string

	for _, path := range envFiles {
		fileEnv, err := ReadEnvFile(path)
		if err != nil {
			return Snapshot{}, nil, fmt.Errorf("env file %q: %w", path, err)
		}
		for k, v := range fileEnv {
			result[k] = v
		}
	}

	for k, v := range Capture(environ) {
		if filter.permits(k) {
			result[k] = v
		}
	}

	for k, v := range overrides {
		if !ValidName(k) {
			return Snapshot{}, nil, fmt.Errorf("override %q: not a valid variable name", k)
		}
		result[k] = v
	}

	for _, name := range filter.Names {
		if _, ok := result[name]; !ok {
			warnings = append(warnings, fmt.Sprintf("allow-listed variable %q has no value; its placeholders will be left verbatim", name))
		}
	}

	return NewSnapshot(result), warnings, nil
}
