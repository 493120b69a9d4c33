package ports

import "go.trai.ch/plank/internal/core/domain"

// SDKStore enumerates the SDK bundles installed on the build host.
// Discovery is read-only; derivation never installs anything.
//
//go:generate go run go.uber.org/mock/mockgen -source=sdk_store.go -destination=mocks/mock_sdk_store.go -package=mocks
type SDKStore interface {
	// Bundles returns every installed SDK bundle.
	Bundles() ([]domain.SDKBundle, error)
}
