package plan

import (
	"path/filepath"

	"go.trai.ch/plank/internal/core/domain"
)

// ClangTargetBuildDescription plans the compilation of a C-family target
// for one build triple.
type ClangTargetBuildDescription struct {
	target domain.Target
	triple domain.BuildTriple
	params domain.BuildParameters
}

var _ TargetBuildDescription = (*ClangTargetBuildDescription)(nil)

func newClangTargetBuildDescription(
	target domain.Target,
	triple domain.BuildTriple,
	params domain.BuildParameters,
) *ClangTargetBuildDescription {
	return &ClangTargetBuildDescription{
		target: target,
		triple: triple,
		params: params,
	}
}

// TargetName returns the described target's name.
func (d *ClangTargetBuildDescription) TargetName() string {
	return d.target.Name
}

// Triple returns the build triple the description was planned for.
func (d *ClangTargetBuildDescription) Triple() domain.BuildTriple {
	return d.triple
}

// Parameters returns the build parameters matching the triple.
func (d *ClangTargetBuildDescription) Parameters() domain.BuildParameters {
	return d.params
}

// BasicArguments returns the ordered clang argument sequence.
func (d *ClangTargetBuildDescription) BasicArguments(isCXX bool) []string {
	debug := d.params.Configuration == domain.ConfigDebug

	args := []string{"-target", string(d.params.Triple())}
	if debug {
		args = append(args, "-O0")
	} else {
		args = append(args, "-O2")
	}
	args = append(args, "-DPACKAGE_BUILD=1")
	if debug {
		args = append(args, "-DDEBUG=1")
	} else {
		args = append(args, "-DNDEBUG")
	}
	args = append(args, "-fblocks")
	if isCXX {
		args = append(args, "-std=c++14")
	}
	if d.target.PublicHeadersDir != "" {
		args = append(args, "-I", d.target.PublicHeadersDir)
	}
	if debug {
		args = append(args, "-g")
	}
	args = append(args, d.params.Options.ExtraCompilerFlags...)
	return args
}

// EmitCommandLine returns the full clang invocation for the target.
func (d *ClangTargetBuildDescription) EmitCommandLine() []string {
	cmd := []string{clangPath(d.params.Toolchain)}
	cmd = append(cmd, d.BasicArguments(d.target.CXX)...)
	cmd = append(cmd, "-c")
	cmd = append(cmd, d.target.Sources...)
	return cmd
}

// Objects enumerates one compiled unit per source file under the target's
// build subdirectory.
func (d *ClangTargetBuildDescription) Objects() []string {
	dir := domain.TargetBuildDir(d.params.BuildPath(), d.target.Name)
	objects := make([]string, 0, len(d.target.Sources))
	for _, src := range d.target.Sources {
		objects = append(objects, filepath.Join(dir, src+".o"))
	}
	return objects
}

// ModuleMap returns the generated module map path when the target exposes
// public headers to native consumers, and an empty string otherwise. The
// path matches what native consumers inject; writing the content is the
// file system collaborator's job.
func (d *ClangTargetBuildDescription) ModuleMap() string {
	if d.target.PublicHeadersDir == "" {
		return ""
	}
	return domain.ModuleMapPath(d.params.BuildPath(), d.target.Name)
}

// clangPath locates the C-family driver next to the native compiler driver.
func clangPath(tc domain.ToolchainDescriptor) string {
	return filepath.Join(filepath.Dir(tc.CompilerPath), "clang")
}
