package sdk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/plank/internal/adapters/fs"
	"go.trai.ch/plank/internal/core/ports"
)

const NodeID graft.ID = "adapter.sdk_store"

func init() {
	graft.Register(graft.Node[ports.SDKStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.SDKStore, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(defaultRoot(), fsys), nil
		},
	})
}

// defaultRoot returns the SDK search root, overridable via PLANK_SDK_ROOT.
func defaultRoot() string {
	if root := os.Getenv("PLANK_SDK_ROOT"); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/usr/local/share/plank/sdks"
	}
	return filepath.Join(home, ".plank", "sdks")
}
