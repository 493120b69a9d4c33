// Package sdk discovers installed SDK bundles on the build host.
package sdk

import (
	"path/filepath"
	"strings"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
)

// BundleSuffix is the directory name suffix marking an SDK bundle.
const BundleSuffix = ".sdk"

var _ ports.SDKStore = (*Store)(nil)

// Store implements ports.SDKStore by probing a root directory for bundle
// subdirectories named "<triple>.sdk". Discovery is read-only.
type Store struct {
	root string
	fsys ports.FileSystem
}

// NewStore creates a new Store probing the given root directory.
func NewStore(root string, fsys ports.FileSystem) *Store {
	return &Store{root: root, fsys: fsys}
}

// Bundles returns every installed SDK bundle under the store root. A
// missing root yields an empty list, not an error: having no SDKs installed
// is a normal state.
func (s *Store) Bundles() ([]domain.SDKBundle, error) {
	if !s.fsys.IsDirectory(s.root) {
		return nil, nil
	}
	names, err := s.fsys.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	var bundles []domain.SDKBundle
	for _, name := range names {
		triple, ok := strings.CutSuffix(name, BundleSuffix)
		if !ok || triple == "" {
			continue
		}
		bundles = append(bundles, domain.SDKBundle{
			Triple: domain.TargetTriple(triple),
			Root:   filepath.Join(s.root, name),
		})
	}
	return bundles, nil
}
