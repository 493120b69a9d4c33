package domain

import "path/filepath"

// BuildConfiguration selects the optimization profile of a build.
type BuildConfiguration string

const (
	// ConfigDebug builds without optimization and with testability enabled.
	ConfigDebug BuildConfiguration = "debug"
	// ConfigRelease builds with optimization.
	ConfigRelease BuildConfiguration = "release"
)

// LinkOptions bundles the linking knobs a parameters set carries.
type LinkOptions struct {
	// StaticStdlib links the standard library statically into products.
	StaticStdlib bool

	// DeadStrip asks the linker to drop unreferenced sections.
	DeadStrip bool

	// ExtraCompilerFlags are appended after all synthesized compile flags.
	ExtraCompilerFlags []string

	// ExtraLinkerFlags are appended after the synthesized linker flags and
	// before the response file.
	ExtraLinkerFlags []string
}

// BuildParameters is the configuration bundle for one build role. A plan
// owns one bundle (destination only) or two independent bundles, one per
// build triple. Parameters are never mutated after plan construction begins.
type BuildParameters struct {
	// Role is the build triple this bundle serves.
	Role BuildTriple

	// DataPath is the root directory all build output lands under.
	DataPath string

	// Configuration selects debug or release.
	Configuration BuildConfiguration

	// Toolchain is the toolchain descriptor compiling for this role.
	Toolchain ToolchainDescriptor

	// Options are the linking knobs for this role.
	Options LinkOptions
}

// Triple returns the target triple of the bundle's toolchain.
func (p BuildParameters) Triple() TargetTriple {
	return p.Toolchain.Triple
}

// BuildPath returns the output root for this bundle. The path embeds the
// target triple and the role so that a target planned for both triples gets
// independent object directories even when both toolchains share a triple.
func (p BuildParameters) BuildPath() string {
	component := string(p.Toolchain.Triple)
	if p.Role == TripleTools {
		component += "-tools"
	}
	return filepath.Join(p.DataPath, component, string(p.Configuration))
}

// ModuleCachePath returns the shared module cache directory under the
// bundle's output root.
func (p BuildParameters) ModuleCachePath() string {
	return filepath.Join(p.BuildPath(), ModuleCacheDirName)
}
