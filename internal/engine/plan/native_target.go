package plan

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/plank/internal/core/domain"
)

// NativeTargetBuildDescription plans the compilation of a native-language
// target for one build triple.
type NativeTargetBuildDescription struct {
	target   domain.Target
	triple   domain.BuildTriple
	params   domain.BuildParameters
	tools    *domain.BuildParameters
	resolver targetResolver
}

var _ TargetBuildDescription = (*NativeTargetBuildDescription)(nil)

func newNativeTargetBuildDescription(
	target domain.Target,
	triple domain.BuildTriple,
	params domain.BuildParameters,
	tools *domain.BuildParameters,
	resolver targetResolver,
) *NativeTargetBuildDescription {
	return &NativeTargetBuildDescription{
		target:   target,
		triple:   triple,
		params:   params,
		tools:    tools,
		resolver: resolver,
	}
}

// TargetName returns the described target's name.
func (d *NativeTargetBuildDescription) TargetName() string {
	return d.target.Name
}

// Triple returns the build triple the description was planned for.
func (d *NativeTargetBuildDescription) Triple() domain.BuildTriple {
	return d.triple
}

// Parameters returns the build parameters matching the triple.
func (d *NativeTargetBuildDescription) Parameters() domain.BuildParameters {
	return d.params
}

// ModuleCachePath returns the shared module cache the target compiles into.
func (d *NativeTargetBuildDescription) ModuleCachePath() string {
	return d.params.ModuleCachePath()
}

// CompileArguments returns the ordered compile argument sequence.
//
// Interop flags for foreign dependencies come before the plugin-loading
// pairs because module maps are resolved first-match by the front end.
// Caller-supplied extra flags always come last so they can override
// everything synthesized here.
func (d *NativeTargetBuildDescription) CompileArguments() []string {
	debug := d.params.Configuration == domain.ConfigDebug

	var args []string
	if debug {
		args = append(args, "-Onone")
	} else {
		args = append(args, "-O")
	}
	args = append(args, "-enable-batch-mode")
	if d.testable() {
		args = append(args, "-enable-testing")
	}
	args = append(args, "-module-name", d.target.ModuleName())
	args = append(args, "-target", string(d.params.Triple()))
	if debug {
		args = append(args, "-g")
	}
	args = append(args, "-module-cache-path", d.params.ModuleCachePath())

	args = append(args, d.interopArguments()...)
	args = append(args, d.pluginArguments()...)
	args = append(args, d.params.Options.ExtraCompilerFlags...)
	return args
}

// testable reports whether the testability flag is emitted: always for test
// and test-support targets, and for everything in debug configuration.
func (d *NativeTargetBuildDescription) testable() bool {
	switch d.target.Kind {
	case domain.KindTest, domain.KindTestDiscovery, domain.KindTestEntryPoint:
		return true
	}
	return d.params.Configuration == domain.ConfigDebug
}

// interopArguments points the compiler at the module map and public headers
// of every foreign-source dependency, in declared dependency order.
func (d *NativeTargetBuildDescription) interopArguments() []string {
	var args []string
	for _, dep := range d.target.Dependencies {
		t, ok := d.resolver.lookupTarget(dep.Name)
		if !ok || t.Kind != domain.KindForeignSource {
			continue
		}
		moduleMap := domain.ModuleMapPath(d.params.BuildPath(), t.Name)
		args = append(args, "-Xcc", "-fmodule-map-file="+moduleMap)
		if t.PublicHeadersDir != "" {
			args = append(args, "-Xcc", "-I"+t.PublicHeadersDir)
		}
	}
	return args
}

// pluginArguments loads every macro dependency from the tools output root.
// The path always references the tools parameters: the plugin executes on
// the build host even though this target builds for the destination.
func (d *NativeTargetBuildDescription) pluginArguments() []string {
	if d.tools == nil {
		return nil
	}
	var args []string
	for _, dep := range d.target.Dependencies {
		if !dep.BuildTime {
			continue
		}
		t, ok := d.resolver.lookupTarget(dep.Name)
		if !ok || !t.Kind.RunsDuringBuild() {
			continue
		}
		args = append(args, "-plugin-path", d.tools.BuildPath())
	}
	return args
}

// EmitCommandLine returns the full compiler invocation: driver path,
// toolchain default flags, compile arguments and the target's sources.
func (d *NativeTargetBuildDescription) EmitCommandLine() []string {
	cmd := []string{d.params.Toolchain.CompilerPath}
	cmd = append(cmd, d.params.Toolchain.ExtraFlags...)
	cmd = append(cmd, d.CompileArguments()...)
	cmd = append(cmd, "-c")
	cmd = append(cmd, d.target.Sources...)
	return cmd
}

// Objects enumerates one compiled unit per source file under the target's
// build subdirectory.
func (d *NativeTargetBuildDescription) Objects() []string {
	dir := domain.TargetBuildDir(d.params.BuildPath(), d.target.Name)
	objects := make([]string, 0, len(d.target.Sources))
	for _, src := range d.target.Sources {
		objects = append(objects, filepath.Join(dir, src+".o"))
	}
	return objects
}

// flagsDigest is the digest compared during module cache collision
// detection: two targets emitting the same module name into the same cache
// must agree on it bit for bit.
func (d *NativeTargetBuildDescription) flagsDigest() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(strings.Join(d.CompileArguments(), "\x1f"))
	return h.Sum64()
}
