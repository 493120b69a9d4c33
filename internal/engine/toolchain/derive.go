// Package toolchain derives the destination toolchain descriptor from the
// host toolchain, the installed SDK bundles and an optional custom root.
package toolchain

import (
	"path/filepath"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/zerr"
)

// Derive computes the toolchain descriptor to use for the requested
// destination triple. A custom root overrides the compiler search root
// unconditionally; otherwise the installed SDK bundles are probed. The
// derived triple is always the requested destination triple, never a
// silent fallback to the host's. Derivation is idempotent and read-only.
func Derive(
	host domain.ToolchainDescriptor,
	hostTriple domain.TargetTriple,
	destTriple domain.TargetTriple,
	customRoot string,
	store ports.SDKStore,
	fsys ports.FileSystem,
	log ports.Logger,
) (domain.ToolchainDescriptor, error) {
	compilerName := filepath.Base(host.CompilerPath)

	if customRoot != "" {
		if !fsys.IsDirectory(customRoot) {
			return domain.ToolchainDescriptor{},
				zerr.With(domain.ErrUnreadableToolchainRoot, "root", customRoot)
		}
		return domain.ToolchainDescriptor{
			Triple:       destTriple,
			CompilerPath: filepath.Join(customRoot, "bin", compilerName),
			CustomRoot:   customRoot,
		}, nil
	}

	if destTriple == hostTriple {
		// The host toolchain already produces code for the destination.
		return domain.ToolchainDescriptor{
			Triple:       destTriple,
			CompilerPath: host.CompilerPath,
			CustomRoot:   host.CustomRoot,
			ExtraFlags:   host.ExtraFlags,
		}, nil
	}

	bundles, err := store.Bundles()
	if err != nil {
		return domain.ToolchainDescriptor{}, zerr.Wrap(err, "failed to enumerate SDK bundles")
	}
	for _, bundle := range bundles {
		if bundle.Triple != destTriple {
			continue
		}
		log.Info("using SDK bundle " + bundle.Root + " for " + string(destTriple))
		return domain.ToolchainDescriptor{
			Triple:       destTriple,
			CompilerPath: filepath.Join(bundle.Root, "bin", compilerName),
			CustomRoot:   bundle.Root,
		}, nil
	}

	return domain.ToolchainDescriptor{},
		zerr.With(domain.ErrNoMatchingToolchain, "triple", string(destTriple))
}
