// Package app implements the application layer for plank.
package app

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/plank/internal/engine/plan"
	"go.trai.ch/plank/internal/engine/toolchain"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ManifestLoader
	store  ports.SDKStore
	fsys   ports.FileSystem
	log    ports.Logger
	tel    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	store ports.SDKStore,
	fsys ports.FileSystem,
	log ports.Logger,
	tel ports.Telemetry,
) *App {
	return &App{
		loader: loader,
		store:  store,
		fsys:   fsys,
		log:    log,
		tel:    tel,
	}
}

// PlanRequest carries the user-facing planning knobs.
type PlanRequest struct {
	// Dir is the package directory holding the manifest.
	Dir string

	// Destination is the destination triple; empty means the host triple.
	Destination domain.TargetTriple

	// Tools is the tools triple; empty means no tools bundle is supplied
	// and macro targets are rejected.
	Tools domain.TargetTriple

	// Configuration selects debug or release; empty means debug.
	Configuration domain.BuildConfiguration

	// DataPath is the build output root; empty means ".build".
	DataPath string

	// ToolchainRoot overrides the destination toolchain search root.
	ToolchainRoot string

	StaticStdlib bool
	DeadStrip    bool
}

// Plan loads the manifest graph, derives the toolchains and constructs the
// build plan.
func (a *App) Plan(ctx context.Context, req PlanRequest) (*plan.Plan, error) {
	graph, err := a.loader.Load(req.Dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	if req.Configuration == "" {
		req.Configuration = domain.ConfigDebug
	}
	if req.DataPath == "" {
		req.DataPath = ".build"
	}

	host := HostToolchain()
	destTriple := req.Destination
	if destTriple == "" {
		destTriple = host.Triple
	}

	destToolchain, err := toolchain.Derive(
		host, host.Triple, destTriple, req.ToolchainRoot, a.store, a.fsys, a.log)
	if err != nil {
		return nil, err
	}

	destination := domain.BuildParameters{
		Role:          domain.TripleDestination,
		DataPath:      req.DataPath,
		Configuration: req.Configuration,
		Toolchain:     destToolchain,
		Options: domain.LinkOptions{
			StaticStdlib: req.StaticStdlib,
			DeadStrip:    req.DeadStrip,
		},
	}

	var tools *domain.BuildParameters
	if req.Tools != "" {
		toolsToolchain, err := toolchain.Derive(
			host, host.Triple, req.Tools, "", a.store, a.fsys, a.log)
		if err != nil {
			return nil, err
		}
		tools = &domain.BuildParameters{
			Role:          domain.TripleTools,
			DataPath:      req.DataPath,
			Configuration: req.Configuration,
			Toolchain:     toolsToolchain,
		}
	}

	return plan.Construct(ctx, graph, destination, tools, a.fsys, a.log, a.tel)
}

// HostToolchain describes the toolchain installed on the build host. The
// compiler path can be pinned via PLANK_COMPILER; otherwise PATH is probed.
func HostToolchain() domain.ToolchainDescriptor {
	compiler := os.Getenv("PLANK_COMPILER")
	if compiler == "" {
		if found, err := exec.LookPath("swiftc"); err == nil {
			compiler = found
		} else {
			compiler = "/usr/bin/swiftc"
		}
	}
	return domain.ToolchainDescriptor{
		Triple:       HostTriple(),
		CompilerPath: compiler,
	}
}

// HostTriple maps the Go runtime platform onto a target triple.
func HostTriple() domain.TargetTriple {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "386":
		arch = "i686"
	}

	switch runtime.GOOS {
	case "darwin":
		return domain.TargetTriple(arch + "-apple-macosx")
	case "linux":
		return domain.TargetTriple(arch + "-unknown-linux-gnu")
	case "windows":
		return domain.TargetTriple(arch + "-unknown-windows-msvc")
	default:
		return domain.TargetTriple(arch + "-unknown-" + runtime.GOOS)
	}
}
