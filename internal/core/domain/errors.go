package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when adding a target whose name is taken.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrProductAlreadyExists is returned when adding a product whose name is taken.
	ErrProductAlreadyExists = zerr.New("product already exists")

	// ErrMissingDependency is returned when a graph node references a target
	// that does not exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not in the plan.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrProductNotFound is returned when a requested product is not in the plan.
	ErrProductNotFound = zerr.New("product not found")

	// ErrMacroNeedsToolsParameters is returned when the graph contains a macro
	// target but no tools build parameters were supplied. A macro can never
	// run against destination-only parameters.
	ErrMacroNeedsToolsParameters = zerr.New("macro target requires tools build parameters")

	// ErrCrossTripleLink is returned when a product would link objects from a
	// target assigned to a different build triple.
	ErrCrossTripleLink = zerr.New("product links objects across build triples")

	// ErrModuleNameCollision is returned when two targets would emit the same
	// module name into the same module cache with differing compile flags.
	ErrModuleNameCollision = zerr.New("module name collision in module cache")

	// ErrNoMatchingToolchain is returned when no installed SDK bundle matches
	// the requested destination triple and no custom root was supplied.
	ErrNoMatchingToolchain = zerr.New("no matching toolchain for triple")

	// ErrUnreadableToolchainRoot is returned when a custom toolchain root is
	// supplied but cannot be read.
	ErrUnreadableToolchainRoot = zerr.New("custom toolchain root is not readable")

	// ErrUnknownTargetKind is returned by the manifest loader for an
	// unrecognized target kind.
	ErrUnknownTargetKind = zerr.New("unknown target kind")

	// ErrUnknownProductType is returned by the manifest loader for an
	// unrecognized product type.
	ErrUnknownProductType = zerr.New("unknown product type")
)
