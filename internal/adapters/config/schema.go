package config

// Manifest represents the structure of the plank.yaml manifest file.
type Manifest struct {
	Version  string                `yaml:"version"`
	Targets  map[string]TargetDTO  `yaml:"targets"`
	Products map[string]ProductDTO `yaml:"products"`
}

// TargetDTO represents a target definition in the manifest.
type TargetDTO struct {
	// Kind is one of "source", "clang", "macro", "test".
	Kind          string   `yaml:"kind"`
	Sources       []string `yaml:"sources"`
	PublicHeaders string   `yaml:"publicHeaders"`
	CXX           bool     `yaml:"cxx"`
	DependsOn     []string `yaml:"dependsOn"`

	// Macros lists macro targets the compiler must load while building
	// this target. They execute on the build host, not the destination.
	Macros []string `yaml:"macros"`
}

// ProductDTO represents a product definition in the manifest.
type ProductDTO struct {
	// Type is one of "executable", "library", "test".
	Type    string   `yaml:"type"`
	Targets []string `yaml:"targets"`
}
