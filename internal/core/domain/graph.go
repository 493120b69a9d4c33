// Package domain contains the core domain models for the build planner:
// the dependency graph, toolchain descriptors and build parameters.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is a closed dependency graph of targets and products.
// It must be validated before the planner walks it.
type Graph struct {
	targets  map[string]Target
	products map[string]Product

	// topological order of targets, populated by Validate
	order []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets:  make(map[string]Target),
		products: make(map[string]Product),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name)
	}
	g.targets[t.Name] = *t
	return nil
}

// AddProduct adds a product to the graph.
// It returns an error if a product with the same name already exists.
func (g *Graph) AddProduct(p *Product) error {
	if _, exists := g.products[p.Name]; exists {
		return zerr.With(ErrProductAlreadyExists, "product", p.Name)
	}
	g.products[p.Name] = *p
	return nil
}

// Target looks up a target by name.
func (g *Graph) Target(name string) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Product looks up a product by name.
func (g *Graph) Product(name string) (Product, bool) {
	p, ok := g.products[name]
	return p, ok
}

// Validate checks that the graph is closed and cycle-free using a
// topological sort, and that every product references existing targets.
// It populates the deterministic target order used by Targets.
func (g *Graph) Validate() error {
	g.order = make([]string, 0, len(g.targets))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u)
		}

		for _, dep := range target.Dependencies {
			if visited[dep.Name] == 1 {
				return g.buildCycleError(path, dep.Name)
			}
			if visited[dep.Name] == 0 {
				if err := visit(dep.Name); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	// Roots are visited in sorted order so that the resulting topological
	// order, and everything derived from it, is deterministic.
	names := make([]string, 0, len(g.targets))
	for name := range g.targets {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	for _, name := range g.productNames() {
		product := g.products[name]
		for _, member := range product.Targets {
			if _, ok := g.targets[member]; !ok {
				err := zerr.With(ErrMissingDependency, "product", product.Name)
				return zerr.With(err, "dependency", member)
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Targets returns an iterator yielding targets in topological order,
// dependencies first. It assumes Validate() has been called and returned nil.
func (g *Graph) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.order {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// Products returns an iterator yielding products sorted by name.
func (g *Graph) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, name := range g.productNames() {
			if !yield(g.products[name]) {
				return
			}
		}
	}
}

func (g *Graph) productNames() []string {
	names := make([]string, 0, len(g.products))
	for name := range g.products {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
