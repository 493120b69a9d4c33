// Package plan implements the build planner: it partitions a dependency
// graph into build triples and synthesizes per-target compile and
// per-product link command lines.
package plan

import "go.trai.ch/plank/internal/core/domain"

// TargetBuildDescription is the per-target planning result. It is produced
// once per (target, build triple) pair, is immutable after construction and
// is queried lazily for its argument sequences.
type TargetBuildDescription interface {
	// TargetName returns the name of the described target.
	TargetName() string

	// Triple returns the build triple the description was planned for.
	Triple() domain.BuildTriple

	// Parameters returns the build parameters matching the triple.
	Parameters() domain.BuildParameters

	// Objects enumerates the object files the target compiles to, under the
	// target's own build subdirectory.
	Objects() []string

	// EmitCommandLine returns the full compiler invocation for the target.
	EmitCommandLine() []string
}

// key identifies one plan entry. The composite of name and build triple is
// the invariant boundary: lookups are unique within a triple, never across.
type key struct {
	name   string
	triple domain.BuildTriple
}

// targetResolver resolves a target name to its record, covering both graph
// targets and planner-synthesized ones.
type targetResolver interface {
	lookupTarget(name string) (domain.Target, bool)
}
