package plan

import (
	"path/filepath"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProductBuildDescription plans the link step of one product. Its object
// inputs are the transitive target descriptions of the product's own build
// triple; mixing triples is a construction-time defect.
type ProductBuildDescription struct {
	product domain.Product
	triple  domain.BuildTriple
	params  domain.BuildParameters
	targets []TargetBuildDescription
}

func newProductBuildDescription(
	product domain.Product,
	triple domain.BuildTriple,
	params domain.BuildParameters,
	targets []TargetBuildDescription,
) (*ProductBuildDescription, error) {
	for _, t := range targets {
		if t.Triple() != triple {
			err := zerr.With(domain.ErrCrossTripleLink, "product", product.Name)
			err = zerr.With(err, "product_triple", triple.String())
			err = zerr.With(err, "target", t.TargetName())
			err = zerr.With(err, "target_triple", t.Triple().String())
			return nil, err
		}
	}
	return &ProductBuildDescription{
		product: product,
		triple:  triple,
		params:  params,
		targets: targets,
	}, nil
}

// ProductName returns the described product's name.
func (d *ProductBuildDescription) ProductName() string {
	return d.product.Name
}

// Triple returns the build triple the product links for.
func (d *ProductBuildDescription) Triple() domain.BuildTriple {
	return d.triple
}

// Parameters returns the build parameters matching the triple.
func (d *ProductBuildDescription) Parameters() domain.BuildParameters {
	return d.params
}

// Targets returns the transitive target descriptions contributing objects.
func (d *ProductBuildDescription) Targets() []TargetBuildDescription {
	return d.targets
}

// ObjectPaths returns every object file feeding the link, in contributing
// target order.
func (d *ProductBuildDescription) ObjectPaths() []string {
	var objects []string
	for _, t := range d.targets {
		objects = append(objects, t.Objects()...)
	}
	return objects
}

// LinkFileListPath returns the product's response file. Objects are passed
// through it rather than inline to stay under platform argument-length
// limits.
func (d *ProductBuildDescription) LinkFileListPath() string {
	return domain.LinkFileListPath(d.params.BuildPath(), d.product.Name)
}

// BinaryPath returns the linked output path. The extension is derived from
// the target triple, never hardcoded per platform.
func (d *ProductBuildDescription) BinaryPath() string {
	buildPath := d.params.BuildPath()
	if d.product.Type == domain.ProductLibrary {
		return filepath.Join(buildPath, "lib"+d.product.Name+".a")
	}
	return filepath.Join(buildPath, d.product.Name+d.params.Triple().ExecutableExtension())
}

// LinkArguments returns the ordered link invocation. The compiler driver is
// used as a unified linker front end; linker passthrough flags precede the
// response file so they take effect before the object list.
func (d *ProductBuildDescription) LinkArguments() []string {
	debug := d.params.Configuration == domain.ConfigDebug

	args := []string{d.params.Toolchain.CompilerPath}
	args = append(args, "-L", d.params.BuildPath())
	args = append(args, "-o", d.BinaryPath())
	args = append(args, "-module-name", d.product.ModuleName())
	if d.params.Options.StaticStdlib {
		args = append(args, "-static-stdlib")
	}
	if d.product.Type == domain.ProductLibrary {
		args = append(args, "-emit-library")
	} else {
		args = append(args, "-emit-executable")
	}
	if d.params.Options.DeadStrip {
		args = append(args, "-Xlinker", deadStripFlag(d.params.Triple()))
	}
	args = append(args, d.params.Options.ExtraLinkerFlags...)
	args = append(args, "@"+d.LinkFileListPath())
	args = append(args, "-target", string(d.params.Triple()))
	if debug {
		args = append(args, "-g")
	}
	return args
}

// deadStripFlag returns the platform spelling of section dead-stripping.
func deadStripFlag(triple domain.TargetTriple) string {
	if triple.IsDarwin() {
		return "-dead_strip"
	}
	return "--gc-sections"
}
