package domain

import "strings"

// TargetTriple identifies the platform a toolchain produces code for,
// in the conventional <arch>-<vendor>-<os> form (e.g. "wasm32-unknown-wasi",
// "arm64-apple-macosx", "x86_64-unknown-linux-gnu").
type TargetTriple string

// Arch returns the architecture component of the triple.
func (t TargetTriple) Arch() string {
	arch, _, _ := strings.Cut(string(t), "-")
	return arch
}

// OS returns the operating system component of the triple, or an empty
// string for malformed triples.
func (t TargetTriple) OS() string {
	_, rest, ok := strings.Cut(string(t), "-")
	if !ok {
		return ""
	}
	_, os, ok := strings.Cut(rest, "-")
	if !ok {
		// Two-component triples like "arm64-linux" put the OS second.
		return rest
	}
	return os
}

// IsWASM reports whether the triple targets a WebAssembly environment.
func (t TargetTriple) IsWASM() bool {
	return strings.HasPrefix(t.Arch(), "wasm")
}

// IsDarwin reports whether the triple targets an Apple platform.
// Apple platforms ship their own test runner, so no test-support targets
// are synthesized for them.
func (t TargetTriple) IsDarwin() bool {
	os := t.OS()
	return strings.Contains(string(t), "-apple-") ||
		strings.HasPrefix(os, "macosx") ||
		strings.HasPrefix(os, "darwin") ||
		strings.HasPrefix(os, "ios")
}

// ExecutableExtension returns the file extension (including the dot) for
// executables on this platform. It is derived from the triple, never from
// the host.
func (t TargetTriple) ExecutableExtension() string {
	if t.IsWASM() {
		return ".wasm"
	}
	return ""
}
