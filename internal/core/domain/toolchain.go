package domain

// ToolchainDescriptor is an immutable record of one toolchain instance.
// Differing behavior across platforms is expressed by constructing distinct
// descriptors, never by mutating one after plan construction begins.
type ToolchainDescriptor struct {
	// Triple is the target triple the toolchain produces code for.
	Triple TargetTriple

	// CompilerPath is the absolute path to the primary compiler driver.
	// The same driver is used as the unified linker front end.
	CompilerPath string

	// CustomRoot is the toolchain root override the descriptor was derived
	// from, empty when the default installation was used.
	CustomRoot string

	// ExtraFlags are default flags the toolchain prepends to every
	// compile invocation.
	ExtraFlags []string
}

// SDKBundle describes one installed SDK discovered on the build host.
type SDKBundle struct {
	// Triple is the destination triple the bundle supports.
	Triple TargetTriple

	// Root is the bundle's toolchain root directory.
	Root string
}
