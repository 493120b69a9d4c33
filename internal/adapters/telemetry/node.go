package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	telprogrock "go.trai.ch/plank/internal/adapters/telemetry/progrock"
	"go.trai.ch/plank/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			if os.Getenv("PLANK_PROGRESS") != "" {
				return telprogrock.New(), nil
			}
			return NewNoop(), nil
		},
	})
}
