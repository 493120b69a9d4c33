// Package telemetry provides the ports.Telemetry implementations.
package telemetry

import (
	"context"

	"go.trai.ch/plank/internal/core/domain"
	"go.trai.ch/plank/internal/core/ports"
)

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a ports.Telemetry that records nothing. It is the default when no
// progress output was requested.
type Noop struct{}

// NewNoop creates a new no-op telemetry provider.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that drops everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close is a no-op.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Log(domain.LogLevel, string) {}
func (noopVertex) Complete(error)              {}
