package domain

import "strings"

// TargetKind distinguishes how a target's sources are compiled and whether
// the target participates in the build itself.
type TargetKind string

const (
	// KindNativeSource is an ordinary target compiled by the native compiler.
	KindNativeSource TargetKind = "source"
	// KindForeignSource is a C-family target compiled by the clang driver.
	KindForeignSource TargetKind = "clang"
	// KindMacro is a compiler plugin executed on the build host.
	KindMacro TargetKind = "macro"
	// KindTest is a native target holding test sources.
	KindTest TargetKind = "test"
	// KindTestDiscovery is a synthesized target enumerating test cases on
	// platforms without a native test runner.
	KindTestDiscovery TargetKind = "test-discovery"
	// KindTestEntryPoint is a synthesized main entry point driving the
	// discovered tests.
	KindTestEntryPoint TargetKind = "test-entry-point"
)

// IsNative reports whether the target is compiled by the native compiler
// rather than the C-family driver.
func (k TargetKind) IsNative() bool {
	return k != KindForeignSource
}

// RunsDuringBuild reports whether the target's output executes on the build
// host as part of compilation.
func (k TargetKind) RunsDuringBuild() bool {
	return k == KindMacro
}

// IsSynthesized reports whether the target kind is created by the planner
// rather than declared in the manifest.
func (k TargetKind) IsSynthesized() bool {
	return k == KindTestDiscovery || k == KindTestEntryPoint
}

// Dependency is one edge of the dependency graph. BuildTime marks edges
// whose dependency must execute during compilation (macro plugins) rather
// than being linked into the consumer.
type Dependency struct {
	Name      string
	BuildTime bool
}

// Target is a compilable module node in the dependency graph.
// Identity is the (Name, Kind) pair; a target may appear in the plan once
// per build triple.
type Target struct {
	Name string
	Kind TargetKind

	// Sources are paths relative to the target directory.
	Sources []string

	// PublicHeadersDir is the public header directory of a foreign-source
	// target, empty otherwise.
	PublicHeadersDir string

	// CXX marks a foreign-source target as C++.
	CXX bool

	Dependencies []Dependency
}

// ModuleName returns the compiler-facing module name of the target.
// Characters that are not valid in module names are mapped to underscores.
func (t *Target) ModuleName() string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, t.Name)
}

// DependsOnForeign reports whether any dependency resolves to a
// foreign-source target in the given graph.
func (t *Target) DependsOnForeign(g *Graph) bool {
	for _, dep := range t.Dependencies {
		if d, ok := g.Target(dep.Name); ok && d.Kind == KindForeignSource {
			return true
		}
	}
	return false
}
