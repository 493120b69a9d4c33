package plan_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plank/internal/adapters/telemetry"
	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/plank/internal/core/ports/mocks"
	"go.trai.ch/plank/internal/engine/plan"
	"go.uber.org/mock/gomock"
)

type planDeps struct {
	fsys ports.FileSystem
	log  ports.Logger
	tel  ports.Telemetry
}

func newPlanDeps(t *testing.T) planDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().IsDirectory(gomock.Any()).Return(true).AnyTimes()
	fsys.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return planDeps{fsys: fsys, log: log, tel: telemetry.NewNoop()}
}

func construct(
	t *testing.T,
	graph *domain.Graph,
	destination domain.BuildParameters,
	tools *domain.BuildParameters,
) (*plan.Plan, error) {
	t.Helper()
	deps := newPlanDeps(t)
	return plan.Construct(context.Background(), graph, destination, tools, deps.fsys, deps.log, deps.tel)
}

func destParams(triple domain.TargetTriple) domain.BuildParameters {
	return domain.BuildParameters{
		Role:          domain.TripleDestination,
		DataPath:      ".build",
		Configuration: domain.ConfigDebug,
		Toolchain: domain.ToolchainDescriptor{
			Triple:       triple,
			CompilerPath: "/opt/toolchain/bin/swiftc",
		},
	}
}

func toolsParams(triple domain.TargetTriple) *domain.BuildParameters {
	p := destParams(triple)
	p.Role = domain.TripleTools
	p.Toolchain.CompilerPath = "/usr/bin/swiftc"
	return &p
}

// wasmGraph is a small cross-compiled package: a library, an executable on
// top of it, and a test bundle over the executable's module.
func wasmGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "lib",
		Kind:    domain.KindNativeSource,
		Sources: []string{"lib.swift"},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "app",
		Kind:         domain.KindNativeSource,
		Sources:      []string{"main.swift"},
		Dependencies: []domain.Dependency{{Name: "lib"}},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "appTests",
		Kind:         domain.KindTest,
		Sources:      []string{"apptests.swift"},
		Dependencies: []domain.Dependency{{Name: "app"}},
	}))
	require.NoError(t, g.AddProduct(&domain.Product{
		Name:    "app",
		Type:    domain.ProductExecutable,
		Targets: []string{"app"},
	}))
	require.NoError(t, g.AddProduct(&domain.Product{
		Name:    "appTests",
		Type:    domain.ProductTest,
		Targets: []string{"appTests"},
	}))
	return g
}

func TestConstruct_WASMScenario(t *testing.T) {
	params := destParams("wasm32-unknown-wasi")
	params.Options.StaticStdlib = true

	p, err := construct(t, wasmGraph(t), params, nil)
	require.NoError(t, err)

	// Three graph targets plus the discovery and runner synthesized for the
	// test product on a platform without a native test runner.
	assert.Equal(t, 5, p.TargetCount())
	assert.Equal(t, 2, p.ProductCount())

	for _, name := range []string{"appTestsDiscoveredTests", "appTestsTestRunner"} {
		_, ok := p.TargetDescription(name, domain.TripleDestination)
		assert.True(t, ok, "expected synthesized target %s", name)
	}

	app, ok := p.ProductDescription("app", domain.TripleDestination)
	require.True(t, ok)

	link := app.LinkArguments()
	assert.Contains(t, link, "-static-stdlib")
	assert.Contains(t, link, "-emit-executable")
	assert.Contains(t, link,
		"@"+filepath.Join(".build", "wasm32-unknown-wasi", "debug", "app.product", "Objects.LinkFileList"))
	assert.Equal(t, ".wasm", filepath.Ext(app.BinaryPath()))
}

func TestConstruct_TestProduct_LinksSynthesizedTargets(t *testing.T) {
	p, err := construct(t, wasmGraph(t), destParams("wasm32-unknown-wasi"), nil)
	require.NoError(t, err)

	tests, ok := p.ProductDescription("appTests", domain.TripleDestination)
	require.True(t, ok)

	var members []string
	for _, desc := range tests.Targets() {
		members = append(members, desc.TargetName())
	}
	assert.ElementsMatch(t,
		[]string{"appTests", "app", "lib", "appTestsDiscoveredTests", "appTestsTestRunner"},
		members)
}

func TestConstruct_DarwinTestProduct_NoSynthesizedTargets(t *testing.T) {
	p, err := construct(t, wasmGraph(t), destParams("arm64-apple-macosx"), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, p.TargetCount())
	_, ok := p.TargetDescription("appTestsDiscoveredTests", domain.TripleDestination)
	assert.False(t, ok)
}

// macroGraph is a package with a host-executed macro plugin: the macro and
// its helper build for the tools triple, the consumer for the destination.
func macroGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "MacroSupport",
		Kind:    domain.KindNativeSource,
		Sources: []string{"support.swift"},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "MacroImpl",
		Kind:         domain.KindMacro,
		Sources:      []string{"macro.swift"},
		Dependencies: []domain.Dependency{{Name: "MacroSupport"}},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "app",
		Kind:         domain.KindNativeSource,
		Sources:      []string{"main.swift"},
		Dependencies: []domain.Dependency{{Name: "MacroImpl", BuildTime: true}},
	}))
	require.NoError(t, g.AddProduct(&domain.Product{
		Name:    "app",
		Type:    domain.ProductExecutable,
		Targets: []string{"app"},
	}))
	return g
}

func TestConstruct_MacroPartitioning(t *testing.T) {
	dest := destParams("aarch64-unknown-linux-gnu")
	tools := toolsParams("x86_64-apple-macosx")

	p, err := construct(t, macroGraph(t), dest, tools)
	require.NoError(t, err)

	macro, ok := p.TargetDescription("MacroImpl", domain.TripleTools)
	require.True(t, ok)
	assert.Equal(t, domain.TargetTriple("x86_64-apple-macosx"), macro.Parameters().Triple())

	_, ok = p.TargetDescription("MacroImpl", domain.TripleDestination)
	assert.False(t, ok, "macro must not be planned for the destination triple")

	// The macro's own dependency follows it onto the tools triple.
	_, ok = p.TargetDescription("MacroSupport", domain.TripleTools)
	assert.True(t, ok)
	_, ok = p.TargetDescription("MacroSupport", domain.TripleDestination)
	assert.False(t, ok)
}

func TestConstruct_PluginPath_UsesToolsOutputRoot(t *testing.T) {
	dest := destParams("aarch64-unknown-linux-gnu")
	tools := toolsParams("x86_64-apple-macosx")

	p, err := construct(t, macroGraph(t), dest, tools)
	require.NoError(t, err)

	app, ok := p.TargetDescription("app", domain.TripleDestination)
	require.True(t, ok)

	args := app.EmitCommandLine()
	idx := -1
	for i, arg := range args {
		if arg == "-plugin-path" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0, "expected a -plugin-path flag, got %v", args)
	require.Less(t, idx+1, len(args))
	assert.Contains(t, args[idx+1], "x86_64-apple-macosx")
	assert.NotContains(t, args[idx+1], "aarch64-unknown-linux-gnu")
}

func TestConstruct_SharedTarget_TwoEntries(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "util",
		Kind:    domain.KindNativeSource,
		Sources: []string{"util.swift"},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "MacroImpl",
		Kind:         domain.KindMacro,
		Sources:      []string{"macro.swift"},
		Dependencies: []domain.Dependency{{Name: "util"}},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "app",
		Kind:    domain.KindNativeSource,
		Sources: []string{"main.swift"},
		Dependencies: []domain.Dependency{
			{Name: "util"},
			{Name: "MacroImpl", BuildTime: true},
		},
	}))
	require.NoError(t, g.AddProduct(&domain.Product{
		Name:    "app",
		Type:    domain.ProductExecutable,
		Targets: []string{"app"},
	}))

	p, err := construct(t, g, destParams("aarch64-unknown-linux-gnu"), toolsParams("x86_64-apple-macosx"))
	require.NoError(t, err)

	destUtil, ok := p.TargetDescription("util", domain.TripleDestination)
	require.True(t, ok)
	toolsUtil, ok := p.TargetDescription("util", domain.TripleTools)
	require.True(t, ok)

	// Same target, two independent materializations: object paths and target
	// flags must never overlap across the two triples.
	assert.NotEqual(t, destUtil.Objects(), toolsUtil.Objects())
	assert.NotEqual(t, destUtil.EmitCommandLine(), toolsUtil.EmitCommandLine())
}

func TestConstruct_NoMacros_AllEntriesDestination(t *testing.T) {
	p, err := construct(t, wasmGraph(t), destParams("wasm32-unknown-wasi"), nil)
	require.NoError(t, err)

	for desc := range p.TargetEntries() {
		assert.Equal(t, domain.TripleDestination, desc.Triple(),
			"target %s planned off the destination triple", desc.TargetName())
	}
}

func TestConstruct_MacroWithoutToolsParameters(t *testing.T) {
	_, err := construct(t, macroGraph(t), destParams("aarch64-unknown-linux-gnu"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "macro target requires tools build parameters")
}

func TestConstruct_MacroProduct_BuildsForToolsTriple(t *testing.T) {
	g := macroGraph(t)
	require.NoError(t, g.AddProduct(&domain.Product{
		Name:    "MacroPlugin",
		Type:    domain.ProductExecutable,
		Targets: []string{"MacroImpl"},
	}))

	p, err := construct(t, g, destParams("aarch64-unknown-linux-gnu"), toolsParams("x86_64-apple-macosx"))
	require.NoError(t, err)

	plugin, ok := p.ProductDescription("MacroPlugin", domain.TripleTools)
	require.True(t, ok)
	assert.Equal(t, domain.TargetTriple("x86_64-apple-macosx"), plugin.Parameters().Triple())

	_, ok = p.ProductDescription("MacroPlugin", domain.TripleDestination)
	assert.False(t, ok)
}

func TestConstruct_ProductTargets_ShareProductTriple(t *testing.T) {
	p, err := construct(t, macroGraph(t), destParams("aarch64-unknown-linux-gnu"), toolsParams("x86_64-apple-macosx"))
	require.NoError(t, err)

	for desc := range p.ProductEntries() {
		for _, target := range desc.Targets() {
			assert.Equal(t, desc.Triple(), target.Triple(),
				"product %s links target %s from a foreign triple", desc.ProductName(), target.TargetName())
		}
	}
}

func TestConstruct_Idempotent(t *testing.T) {
	dest := destParams("aarch64-unknown-linux-gnu")
	tools := toolsParams("x86_64-apple-macosx")

	snapshot := func() []string {
		p, err := construct(t, macroGraph(t), dest, tools)
		require.NoError(t, err)

		var lines []string
		for desc := range p.TargetEntries() {
			lines = append(lines, strings.Join(desc.EmitCommandLine(), " "))
		}
		for desc := range p.ProductEntries() {
			lines = append(lines, strings.Join(desc.LinkArguments(), " "))
		}
		return lines
	}

	first := snapshot()
	for range 5 {
		assert.Equal(t, first, snapshot())
	}
}

func TestConstruct_ModuleNameCollision(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:             "clib",
		Kind:             domain.KindForeignSource,
		Sources:          []string{"impl.c"},
		PublicHeadersDir: "include",
	}))
	// Both names normalize to module "my_lib"; the foreign dependency gives
	// one of them differing compile flags.
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "my-lib",
		Kind:         domain.KindNativeSource,
		Sources:      []string{"a.swift"},
		Dependencies: []domain.Dependency{{Name: "clib"}},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "my_lib",
		Kind:    domain.KindNativeSource,
		Sources: []string{"b.swift"},
	}))

	_, err := construct(t, g, destParams("x86_64-unknown-linux-gnu"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "module name collision")
}

func TestConstruct_SameFlags_SameModuleName_Allowed(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "my-lib",
		Kind:    domain.KindNativeSource,
		Sources: []string{"a.swift"},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    "my_lib",
		Kind:    domain.KindNativeSource,
		Sources: []string{"b.swift"},
	}))

	// Identical flag sequences are compatible cache writers, so the plan is
	// accepted even though the module names coincide.
	_, err := construct(t, g, destParams("x86_64-unknown-linux-gnu"), nil)
	assert.NoError(t, err)
}

func TestConstruct_InvalidGraph_Rejected(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "a",
		Kind:         domain.KindNativeSource,
		Dependencies: []domain.Dependency{{Name: "missing"}},
	}))

	_, err := construct(t, g, destParams("x86_64-unknown-linux-gnu"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing dependency")
}
