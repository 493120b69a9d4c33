package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddTarget_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	target := domain.Target{Name: "lib", Kind: domain.KindNativeSource}

	require.NoError(t, g.AddTarget(&target))

	err := g.AddTarget(&target)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "lib", zErr.Metadata()["target"])
}

func TestGraph_Validate(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*domain.Graph)
		errContains string
	}{
		{
			name: "valid chain",
			setup: func(g *domain.Graph) {
				_ = g.AddTarget(&domain.Target{Name: "c"})
				_ = g.AddTarget(&domain.Target{
					Name:         "b",
					Dependencies: []domain.Dependency{{Name: "c"}},
				})
				_ = g.AddTarget(&domain.Target{
					Name:         "a",
					Dependencies: []domain.Dependency{{Name: "b"}},
				})
			},
		},
		{
			name: "two node cycle",
			setup: func(g *domain.Graph) {
				_ = g.AddTarget(&domain.Target{
					Name:         "a",
					Dependencies: []domain.Dependency{{Name: "b"}},
				})
				_ = g.AddTarget(&domain.Target{
					Name:         "b",
					Dependencies: []domain.Dependency{{Name: "a"}},
				})
			},
			errContains: "cycle detected",
		},
		{
			name: "self cycle",
			setup: func(g *domain.Graph) {
				_ = g.AddTarget(&domain.Target{
					Name:         "a",
					Dependencies: []domain.Dependency{{Name: "a"}},
				})
			},
			errContains: "cycle detected",
		},
		{
			name: "missing dependency",
			setup: func(g *domain.Graph) {
				_ = g.AddTarget(&domain.Target{
					Name:         "a",
					Dependencies: []domain.Dependency{{Name: "ghost"}},
				})
			},
			errContains: "missing dependency",
		},
		{
			name: "product references missing target",
			setup: func(g *domain.Graph) {
				_ = g.AddTarget(&domain.Target{Name: "a"})
				_ = g.AddProduct(&domain.Product{
					Name:    "app",
					Type:    domain.ProductExecutable,
					Targets: []string{"ghost"},
				})
			},
			errContains: "missing dependency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			tt.setup(g)

			err := g.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestGraph_Targets_TopologicalOrder(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         "app",
		Dependencies: []domain.Dependency{{Name: "lib"}},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{Name: "lib"}))
	require.NoError(t, g.Validate())

	var order []string
	for target := range g.Targets() {
		order = append(order, target.Name)
	}
	assert.Equal(t, []string{"lib", "app"}, order)
}

func TestGraph_Targets_Deterministic(t *testing.T) {
	build := func() []string {
		g := domain.NewGraph()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			_ = g.AddTarget(&domain.Target{Name: name})
		}
		_ = g.Validate()

		var order []string
		for target := range g.Targets() {
			order = append(order, target.Name)
		}
		return order
	}

	first := build()
	for range 10 {
		assert.Equal(t, first, build())
	}
}

func TestGraph_Products_SortedByName(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{Name: "a"}))
	require.NoError(t, g.AddProduct(&domain.Product{Name: "zeta", Targets: []string{"a"}}))
	require.NoError(t, g.AddProduct(&domain.Product{Name: "alpha", Targets: []string{"a"}}))
	require.NoError(t, g.Validate())

	var names []string
	for product := range g.Products() {
		names = append(names, product.Name)
	}
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestGraph_Cycle_Metadata(t *testing.T) {
	g := domain.NewGraph()
	_ = g.AddTarget(&domain.Target{
		Name:         "a",
		Dependencies: []domain.Dependency{{Name: "b"}},
	})
	_ = g.AddTarget(&domain.Target{
		Name:         "b",
		Dependencies: []domain.Dependency{{Name: "a"}},
	})

	err := g.Validate()
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	cycle, ok := zErr.Metadata()["cycle"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, cycle)
}
