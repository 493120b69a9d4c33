package ports

import "go.trai.ch/plank/internal/core/domain"

// ManifestLoader produces a validated dependency graph from a package
// manifest. Manifest parsing and dependency resolution are external
// collaborators of the planner; this is their boundary.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given directory.
	Load(dir string) (*domain.Graph, error)
}
