package domain

// BuildTriple classifies a plan entry by where its code runs: on the
// platform the user ships to, or on the machine performing the build.
// Every plan entry carries exactly one BuildTriple.
type BuildTriple string

const (
	// TripleDestination marks code compiled for the shipped platform.
	TripleDestination BuildTriple = "destination"

	// TripleTools marks code that must execute on the build host itself,
	// such as macro plugins loaded by the compiler.
	TripleTools BuildTriple = "tools"
)

// String returns the string representation of the build triple.
func (b BuildTriple) String() string {
	return string(b)
}
