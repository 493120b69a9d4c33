package plan

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"slices"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Plan is the result of planning one dependency graph against one or two
// build parameters bundles. It exposes lookups keyed by (name, build
// triple); entries are unique within a triple, never across triples.
type Plan struct {
	destination domain.BuildParameters
	tools       *domain.BuildParameters

	graph       *domain.Graph
	synthesized map[string]domain.Target

	targets      map[key]TargetBuildDescription
	products     map[key]*ProductBuildDescription
	targetOrder  []key
	productOrder []key
}

// entry is one (target, triple) pair scheduled for description synthesis.
type entry struct {
	target domain.Target
	triple domain.BuildTriple
}

// Construct plans the given graph. The destination parameters are always
// required; tools parameters are required only when the graph contains a
// macro target. Construction is all-or-nothing: on error no partial plan is
// returned. Beyond read-only file system probing there are no side effects.
func Construct(
	ctx context.Context,
	graph *domain.Graph,
	destination domain.BuildParameters,
	tools *domain.BuildParameters,
	fsys ports.FileSystem,
	log ports.Logger,
	tel ports.Telemetry,
) (*Plan, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	part := partitionGraph(graph)
	if part.hasMacros && tools == nil {
		return nil, zerr.With(domain.ErrMacroNeedsToolsParameters,
			"destination_triple", string(destination.Triple()))
	}

	destination.Role = domain.TripleDestination
	if tools != nil {
		toolsCopy := *tools
		toolsCopy.Role = domain.TripleTools
		tools = &toolsCopy
	}

	p := &Plan{
		destination: destination,
		tools:       tools,
		graph:       graph,
		synthesized: make(map[string]domain.Target),
		targets:     make(map[key]TargetBuildDescription),
		products:    make(map[key]*ProductBuildDescription),
	}

	entries := p.collectEntries(part)
	if err := p.synthesizeDescriptions(ctx, entries); err != nil {
		return nil, err
	}
	if err := p.checkModuleCollisions(); err != nil {
		return nil, err
	}
	p.probeForeignHeaders(fsys, log)

	if err := p.planProducts(ctx, part, tel); err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("planned %d targets and %d products",
		len(p.targetOrder), len(p.productOrder)))
	return p, nil
}

// collectEntries materializes the partitioning result into the ordered
// entry list, appending test-support targets synthesized for platforms
// without a native test runner. Graph targets come in topological order;
// synthesized targets follow in product name order.
func (p *Plan) collectEntries(part partitionResult) []entry {
	var entries []entry
	for t := range p.graph.Targets() {
		if part.destination[t.Name] {
			entries = append(entries, entry{target: t, triple: domain.TripleDestination})
		}
		if part.tools[t.Name] {
			entries = append(entries, entry{target: t, triple: domain.TripleTools})
		}
	}

	for product := range p.graph.Products() {
		if !product.IsTest() {
			continue
		}
		triple := part.productTriple(&product)
		if p.parametersFor(triple).Triple().IsDarwin() {
			continue
		}
		discovery := domain.Target{
			Name:    product.Name + "DiscoveredTests",
			Kind:    domain.KindTestDiscovery,
			Sources: []string{"DiscoveredTests.swift"},
		}
		for _, member := range product.Targets {
			discovery.Dependencies = append(discovery.Dependencies,
				domain.Dependency{Name: member})
		}
		runner := domain.Target{
			Name:    product.Name + "TestRunner",
			Kind:    domain.KindTestEntryPoint,
			Sources: []string{"TestRunner.swift"},
			Dependencies: []domain.Dependency{
				{Name: discovery.Name},
			},
		}
		p.synthesized[discovery.Name] = discovery
		p.synthesized[runner.Name] = runner
		entries = append(entries,
			entry{target: discovery, triple: triple},
			entry{target: runner, triple: triple},
		)
	}
	return entries
}

// synthesizeDescriptions builds one description per entry. Independent
// per-target synthesis runs in parallel as a throughput optimization; each
// description reads only the finished partitioning result, and results are
// written into preassigned slots so the outcome is byte-identical to a
// sequential pass.
func (p *Plan) synthesizeDescriptions(ctx context.Context, entries []entry) error {
	descriptions := make([]TargetBuildDescription, len(entries))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() error {
			params := p.parametersFor(e.triple)
			if e.target.Kind == domain.KindForeignSource {
				descriptions[i] = newClangTargetBuildDescription(e.target, e.triple, params)
			} else {
				descriptions[i] = newNativeTargetBuildDescription(e.target, e.triple, params, p.tools, p)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, e := range entries {
		k := key{name: e.target.Name, triple: e.triple}
		p.targets[k] = descriptions[i]
		p.targetOrder = append(p.targetOrder, k)
	}
	return nil
}

// checkModuleCollisions rejects plans where two targets would emit the same
// module name into the same module cache with differing compile flags. The
// second writer would silently poison the first one's cache entries.
func (p *Plan) checkModuleCollisions() error {
	digests := make(map[string]uint64)
	owners := make(map[string]string)
	for _, k := range p.targetOrder {
		native, ok := p.targets[k].(*NativeTargetBuildDescription)
		if !ok {
			continue
		}
		cacheKey := native.ModuleCachePath() + "\x00" + native.target.ModuleName()
		digest := native.flagsDigest()
		if prev, seen := digests[cacheKey]; seen && prev != digest {
			err := zerr.With(domain.ErrModuleNameCollision, "module_name", native.target.ModuleName())
			err = zerr.With(err, "target", native.target.Name)
			err = zerr.With(err, "conflicts_with", owners[cacheKey])
			err = zerr.With(err, "module_cache", native.ModuleCachePath())
			return err
		}
		if _, seen := digests[cacheKey]; !seen {
			digests[cacheKey] = digest
			owners[cacheKey] = native.target.Name
		}
	}
	return nil
}

// probeForeignHeaders warns about declared public header directories that
// do not exist. Read-only; planning never creates them.
func (p *Plan) probeForeignHeaders(fsys ports.FileSystem, log ports.Logger) {
	for t := range p.graph.Targets() {
		if t.Kind != domain.KindForeignSource || t.PublicHeadersDir == "" {
			continue
		}
		if !fsys.IsDirectory(t.PublicHeadersDir) {
			log.Warn("public headers directory missing: " + t.PublicHeadersDir)
		}
	}
}

// planProducts builds one ProductBuildDescription per product from the
// transitive link closure restricted to the product's own triple.
func (p *Plan) planProducts(ctx context.Context, part partitionResult, tel ports.Telemetry) error {
	for product := range p.graph.Products() {
		triple := part.productTriple(&product)
		_, vertex := tel.Record(ctx, "plan "+product.Name)

		roots := slices.Clone(product.Targets)
		if product.IsTest() {
			for _, suffix := range []string{"DiscoveredTests", "TestRunner"} {
				name := product.Name + suffix
				if _, ok := p.synthesized[name]; ok {
					roots = append(roots, name)
				}
			}
		}

		targets, err := p.linkClosure(roots, triple)
		if err == nil {
			var desc *ProductBuildDescription
			desc, err = newProductBuildDescription(product, triple, p.parametersFor(triple), targets)
			if err == nil {
				k := key{name: product.Name, triple: triple}
				p.products[k] = desc
				p.productOrder = append(p.productOrder, k)
			}
		}

		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// linkClosure walks link edges from the given roots and collects the
// descriptions planned for the requested triple. Build-time edges are not
// followed: plugins never link into their consumers.
func (p *Plan) linkClosure(roots []string, triple domain.BuildTriple) ([]TargetBuildDescription, error) {
	var result []TargetBuildDescription
	seen := make(map[string]bool)
	queue := slices.Clone(roots)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true

		desc, ok := p.targets[key{name: name, triple: triple}]
		if !ok {
			err := zerr.With(domain.ErrTargetNotFound, "target", name)
			return nil, zerr.With(err, "triple", triple.String())
		}
		result = append(result, desc)

		t, ok := p.lookupTarget(name)
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", name)
		}
		for _, dep := range t.Dependencies {
			if dep.BuildTime {
				continue
			}
			queue = append(queue, dep.Name)
		}
	}
	return result, nil
}

// lookupTarget resolves graph targets and planner-synthesized ones.
func (p *Plan) lookupTarget(name string) (domain.Target, bool) {
	if t, ok := p.graph.Target(name); ok {
		return t, true
	}
	t, ok := p.synthesized[name]
	return t, ok
}

// parametersFor returns the parameters bundle serving the given triple.
// With a single bundle supplied, it serves both triples.
func (p *Plan) parametersFor(triple domain.BuildTriple) domain.BuildParameters {
	if triple == domain.TripleTools && p.tools != nil {
		return *p.tools
	}
	return p.destination
}

// DestinationParameters returns the destination bundle the plan was built with.
func (p *Plan) DestinationParameters() domain.BuildParameters {
	return p.destination
}

// ToolsParameters returns the tools bundle, or nil when only one bundle was
// supplied.
func (p *Plan) ToolsParameters() *domain.BuildParameters {
	return p.tools
}

// TargetDescription looks up the plan entry for (name, triple).
func (p *Plan) TargetDescription(name string, triple domain.BuildTriple) (TargetBuildDescription, bool) {
	d, ok := p.targets[key{name: name, triple: triple}]
	return d, ok
}

// ProductDescription looks up the plan entry for (name, triple).
func (p *Plan) ProductDescription(name string, triple domain.BuildTriple) (*ProductBuildDescription, bool) {
	d, ok := p.products[key{name: name, triple: triple}]
	return d, ok
}

// TargetCount returns the number of target plan entries across both triples.
func (p *Plan) TargetCount() int {
	return len(p.targetOrder)
}

// ProductCount returns the number of product plan entries.
func (p *Plan) ProductCount() int {
	return len(p.productOrder)
}

// TargetEntries yields target descriptions in deterministic plan order.
func (p *Plan) TargetEntries() iter.Seq[TargetBuildDescription] {
	return func(yield func(TargetBuildDescription) bool) {
		for _, k := range p.targetOrder {
			if !yield(p.targets[k]) {
				return
			}
		}
	}
}

// ProductEntries yields product descriptions in deterministic plan order.
func (p *Plan) ProductEntries() iter.Seq[*ProductBuildDescription] {
	return func(yield func(*ProductBuildDescription) bool) {
		for _, k := range p.productOrder {
			if !yield(p.products[k]) {
				return
			}
		}
	}
}
