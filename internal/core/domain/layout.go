package domain

import "path/filepath"

const (
	// TargetDirSuffix is appended to a target name to form its object directory.
	TargetDirSuffix = ".build"

	// ProductDirSuffix is appended to a product name to form its link directory.
	ProductDirSuffix = ".product"

	// LinkFileListName is the response file aggregating a product's objects.
	LinkFileListName = "Objects.LinkFileList"

	// ModuleCacheDirName is the shared module cache directory name.
	ModuleCacheDirName = "ModuleCache"

	// ModuleMapFileName is the generated module map exposing a foreign-source
	// target's headers to native consumers.
	ModuleMapFileName = "module.modulemap"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TargetBuildDir returns the per-target object directory under buildPath.
func TargetBuildDir(buildPath, targetName string) string {
	return filepath.Join(buildPath, targetName+TargetDirSuffix)
}

// ProductDir returns the per-product link directory under buildPath.
func ProductDir(buildPath, productName string) string {
	return filepath.Join(buildPath, productName+ProductDirSuffix)
}

// LinkFileListPath returns the response file path for a product.
func LinkFileListPath(buildPath, productName string) string {
	return filepath.Join(ProductDir(buildPath, productName), LinkFileListName)
}

// ModuleMapPath returns the generated module map path for a foreign-source
// target. Content generation is the file system collaborator's concern; the
// path must be stable because native consumers embed it in compile flags.
func ModuleMapPath(buildPath, targetName string) string {
	return filepath.Join(TargetBuildDir(buildPath, targetName), ModuleMapFileName)
}
