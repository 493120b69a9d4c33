package ports

// FileSystem is the read-only file system surface the planner and the
// toolchain deriver are allowed to touch. Planning never writes.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether the path exists.
	Exists(path string) bool

	// IsDirectory reports whether the path exists and is a readable directory.
	IsDirectory(path string) bool

	// ReadDir lists the entry names of a directory.
	ReadDir(path string) ([]string, error)
}
