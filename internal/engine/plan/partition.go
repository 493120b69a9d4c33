package plan

import "go.trai.ch/plank/internal/core/domain"

// partitionResult holds the triple assignment of every graph target.
// A target may be a member of both sets; it is then materialized twice.
type partitionResult struct {
	destination map[string]bool
	tools       map[string]bool
	hasMacros   bool
}

// partitionGraph classifies every target into its build triple(s) with a
// two-pass fixed-point walk, so the result is independent of visit order.
//
// Pass one seeds the tools set with every macro target and closes it over
// all dependency edges: whatever a host-executed plugin needs must itself
// run on the host. Pass two seeds the destination set with every target
// that is not tools-only and closes it over link edges; build-time edges
// are not followed, so a consumer never drags its macro into the
// destination triple. A target reached by both passes belongs to both sets.
func partitionGraph(g *domain.Graph) partitionResult {
	tools := make(map[string]bool)

	var queue []string
	for t := range g.Targets() {
		if t.Kind.RunsDuringBuild() {
			tools[t.Name] = true
			queue = append(queue, t.Name)
		}
	}
	hasMacros := len(queue) > 0

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		t, ok := g.Target(name)
		if !ok {
			continue
		}
		for _, dep := range t.Dependencies {
			if !tools[dep.Name] {
				tools[dep.Name] = true
				queue = append(queue, dep.Name)
			}
		}
	}

	destination := make(map[string]bool)
	for t := range g.Targets() {
		if !tools[t.Name] {
			destination[t.Name] = true
			queue = append(queue, t.Name)
		}
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		t, ok := g.Target(name)
		if !ok {
			continue
		}
		for _, dep := range t.Dependencies {
			if dep.BuildTime {
				continue
			}
			if !destination[dep.Name] {
				destination[dep.Name] = true
				queue = append(queue, dep.Name)
			}
		}
	}

	return partitionResult{
		destination: destination,
		tools:       tools,
		hasMacros:   hasMacros,
	}
}

// productTriple derives the build triple of a product from its members.
// A product whose members are all tools-only (a macro plugin executable)
// builds for the tools triple; everything else ships to the destination.
func (r partitionResult) productTriple(p *domain.Product) domain.BuildTriple {
	if len(p.Targets) == 0 {
		return domain.TripleDestination
	}
	for _, member := range p.Targets {
		if !r.tools[member] || r.destination[member] {
			return domain.TripleDestination
		}
	}
	return domain.TripleTools
}
