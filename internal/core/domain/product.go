package domain

// ProductType distinguishes the linkable outputs a package can declare.
type ProductType string

const (
	// ProductExecutable links its targets into an executable binary.
	ProductExecutable ProductType = "executable"
	// ProductLibrary links its targets into a library.
	ProductLibrary ProductType = "library"
	// ProductTest links test targets into a runnable test bundle.
	ProductTest ProductType = "test"
)

// Product is a buildable output composed of one or more targets plus their
// transitive dependency closure. Products are never shared across build
// triples.
type Product struct {
	Name    string
	Type    ProductType
	Targets []string
}

// IsTest reports whether the product is a test bundle.
func (p *Product) IsTest() bool {
	return p.Type == ProductTest
}

// ModuleName returns the module name used for the product's link step.
func (p *Product) ModuleName() string {
	t := Target{Name: p.Name}
	return t.ModuleName()
}
