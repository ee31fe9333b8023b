package entities

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// DependencyScope is the configuration a dependency is declared in.
type DependencyScope string

const (
	ScopeCompileOnly           DependencyScope = "compileOnly"
	ScopeImplementation        DependencyScope = "implementation"
	ScopeCoreLibraryDesugaring DependencyScope = "coreLibraryDesugaring"
)

// ParseDependencyScope accepts one of the known configuration names.
func ParseDependencyScope(raw string) (DependencyScope, error) {
	switch scope := DependencyScope(strings.TrimSpace(raw)); scope {
	case ScopeCompileOnly, ScopeImplementation, ScopeCoreLibraryDesugaring:
		return scope, nil
	default:
		return "", fmt.Errorf("unknown dependency scope %q", raw)
	}
}

// DependencySpec is a single declared dependency.
type DependencySpec struct {
	Coordinate string          `json:"coordinate" yaml:"coordinate"`
	Scope      DependencyScope `json:"scope"      yaml:"scope"`
}

// DependencyExclusion removes matching modules from every configuration.
// An empty Module matches every module of the group.
type DependencyExclusion struct {
	Group  string `json:"group"            yaml:"group"`
	Module string `json:"module,omitempty" yaml:"module,omitempty"`
}

// Coordinate is a parsed "group:module[:version]" notation.
type Coordinate struct {
	Group   string
	Module  string
	Version string
}

// ParseCoordinate splits a dependency notation. An "@type" artifact suffix is dropped.
func ParseCoordinate(raw string) (Coordinate, error) {
	notation := strings.TrimSpace(raw)
	if at := strings.LastIndex(notation, "@"); at >= 0 {
		notation = notation[:at]
	}

	parts := strings.Split(notation, ":")
	if len(parts) < 2 || len(parts) > 3 { //nolint:mnd // group:module[:version]
		return Coordinate{}, fmt.Errorf("coordinate %q must be group:module[:version]", raw)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return Coordinate{}, fmt.Errorf("coordinate %q has an empty segment", raw)
		}
	}

	coordinate := Coordinate{Group: parts[0], Module: parts[1]}
	if len(parts) == 3 { //nolint:mnd // version present
		coordinate.Version = parts[2]
	}
	return coordinate, nil
}

// Matches reports whether the exclusion applies to the coordinate.
func (e DependencyExclusion) Matches(c Coordinate) bool {
	if e.Group != c.Group {
		return false
	}
	return e.Module == "" || e.Module == c.Module
}

// ApplyExclusions returns a new slice without the dependencies matched by any
// exclusion. The input slice is left untouched. Dependencies whose notation
// cannot be parsed never match.
func ApplyExclusions(deps []DependencySpec, exclusions []DependencyExclusion) []DependencySpec {
	result := make([]DependencySpec, 0, len(deps))
	for _, dep := range deps {
		coordinate, err := ParseCoordinate(dep.Coordinate)
		if err == nil && isExcluded(coordinate, exclusions) {
			continue
		}
		result = append(result, dep)
	}
	return result
}

func isExcluded(c Coordinate, exclusions []DependencyExclusion) bool {
	for _, exclusion := range exclusions {
		if exclusion.Matches(c) {
			return true
		}
	}
	return false
}

// NormalizeDependencies collapses duplicate (scope, group, module) entries to
// the one with the highest version, keeping first-seen order.
func NormalizeDependencies(deps []DependencySpec) []DependencySpec {
	type key struct {
		scope  DependencyScope
		group  string
		module string
	}

	result := make([]DependencySpec, 0, len(deps))
	index := make(map[key]int, len(deps))
	versions := make(map[key]string, len(deps))

	for _, dep := range deps {
		coordinate, err := ParseCoordinate(dep.Coordinate)
		if err != nil {
			result = append(result, dep)
			continue
		}

		k := key{scope: dep.Scope, group: coordinate.Group, module: coordinate.Module}
		pos, seen := index[k]
		if !seen {
			index[k] = len(result)
			versions[k] = coordinate.Version
			result = append(result, dep)
			continue
		}
		if IsNewerVersion(versions[k], coordinate.Version) {
			versions[k] = coordinate.Version
			result[pos] = dep
		}
	}
	return result
}

// IsNewerVersion reports whether candidate sorts after current. Semantic
// versions are compared as such; anything else falls back to string order.
func IsNewerVersion(current, candidate string) bool {
	cur := normalizeVersion(current)
	next := normalizeVersion(candidate)
	if semver.IsValid(cur) && semver.IsValid(next) {
		return semver.Compare(next, cur) > 0
	}
	return candidate > current
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
