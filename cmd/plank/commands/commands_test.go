package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plank/internal/adapters/config"
	"go.trai.ch/plank/internal/adapters/fs"
	"go.trai.ch/plank/internal/adapters/logger"
	"go.trai.ch/plank/internal/adapters/sdk"
	"go.trai.ch/plank/internal/adapters/telemetry"
	"go.trai.ch/plank/internal/app"
	"go.trai.ch/plank/internal/build"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	log := logger.New()
	log.SetOutput(bytes.NewBuffer(nil))

	fsys := fs.New()
	store := sdk.NewStore(filepath.Join(t.TempDir(), "sdks"), fsys)
	return New(app.New(config.NewLoader(), store, fsys, log, telemetry.NewNoop()))
}

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.rootCmd.SetOut(&out)
	c.rootCmd.SetErr(&out)
	c.rootCmd.SetArgs(args)
	err := c.Execute(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, newTestCLI(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestPlanCommand(t *testing.T) {
	t.Setenv("PLANK_COMPILER", "/usr/bin/swiftc")

	dir := t.TempDir()
	manifest := `
targets:
  lib:
    sources: [lib.swift]
  app:
    sources: [main.swift]
    dependsOn: [lib]
products:
  app:
    targets: [app]
`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, config.ManifestFileName), []byte(manifest), 0o644))

	root := t.TempDir()
	out, err := execute(t, newTestCLI(t),
		"plan", dir,
		"--triple", "wasm32-unknown-wasi",
		"--toolchain-root", root,
		"--static-stdlib",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "# target lib (destination)")
	assert.Contains(t, out, "# target app (destination)")
	assert.Contains(t, out, "# product app (destination)")
	assert.Contains(t, out, "-static-stdlib")
	assert.Contains(t, out, "-target wasm32-unknown-wasi")
}

func TestPlanCommand_UnknownTriple(t *testing.T) {
	t.Setenv("PLANK_COMPILER", "/usr/bin/swiftc")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, config.ManifestFileName),
		[]byte("targets:\n  app:\n    sources: [main.swift]\n"), 0o644))

	_, err := execute(t, newTestCLI(t), "plan", dir, "--triple", "wasm32-unknown-wasi")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no matching toolchain")
}
