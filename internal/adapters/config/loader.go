// Package config provides the manifest loader for plank.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the name of the package manifest file.
const ManifestFileName = "plank.yaml"

var _ ports.ManifestLoader = (*FileManifestLoader)(nil)

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	Filename string
}

// NewLoader creates a loader reading the default manifest file name.
func NewLoader() *FileManifestLoader {
	return &FileManifestLoader{Filename: ManifestFileName}
}

// Load reads the manifest from the given working directory.
func (l *FileManifestLoader) Load(dir string) (*domain.Graph, error) {
	path := filepath.Join(dir, l.Filename)
	return Load(path)
}

// Load reads a manifest file from the given path and returns a validated
// domain.Graph.
func Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	g := domain.NewGraph()

	// First pass: collect target names so dependencies can be verified
	// before the graph is assembled.
	targetNames := make(map[string]bool)
	for name := range manifest.Targets {
		targetNames[name] = true
	}

	for name, dto := range manifest.Targets {
		kind, err := targetKind(dto.Kind)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}

		var deps []domain.Dependency
		for _, dep := range dto.DependsOn {
			if !targetNames[dep] {
				err := zerr.With(domain.ErrMissingDependency, "target", name)
				return nil, zerr.With(err, "dependency", dep)
			}
			deps = append(deps, domain.Dependency{Name: dep})
		}
		for _, macro := range dto.Macros {
			if !targetNames[macro] {
				err := zerr.With(domain.ErrMissingDependency, "target", name)
				return nil, zerr.With(err, "dependency", macro)
			}
			deps = append(deps, domain.Dependency{Name: macro, BuildTime: true})
		}

		target := &domain.Target{
			Name:             name,
			Kind:             kind,
			Sources:          dto.Sources,
			PublicHeadersDir: dto.PublicHeaders,
			CXX:              dto.CXX,
			Dependencies:     deps,
		}
		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	for name, dto := range manifest.Products {
		ptype, err := productType(dto.Type)
		if err != nil {
			return nil, zerr.With(err, "product", name)
		}
		product := &domain.Product{
			Name:    name,
			Type:    ptype,
			Targets: dto.Targets,
		}
		if err := g.AddProduct(product); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func targetKind(kind string) (domain.TargetKind, error) {
	switch kind {
	case "", "source":
		return domain.KindNativeSource, nil
	case "clang":
		return domain.KindForeignSource, nil
	case "macro":
		return domain.KindMacro, nil
	case "test":
		return domain.KindTest, nil
	default:
		return "", zerr.With(domain.ErrUnknownTargetKind, "kind", kind)
	}
}

func productType(ptype string) (domain.ProductType, error) {
	switch ptype {
	case "", "executable":
		return domain.ProductExecutable, nil
	case "library":
		return domain.ProductLibrary, nil
	case "test":
		return domain.ProductTest, nil
	default:
		return "", zerr.With(domain.ErrUnknownProductType, "type", ptype)
	}
}
