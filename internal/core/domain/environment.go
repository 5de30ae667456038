package domain

// Classification represents the detected execution environment of the updater.
type Classification int

const (
	// Standalone indicates the update runs on a plain host; the installed
	// package set is left alone and only the lockfiles are regenerated.
	Standalone Classification = iota
	// Contained indicates the update runs inside the project devcontainer
	// and the installed package set should be reconciled after compiling.
	Contained
)

// String returns the lowercase name used in log output.
func (c Classification) String() string {
	if c == Contained {
		return "contained"
	}
	return "standalone"
}
