// Package detector provides execution-environment classification for the updater.
package detector

import (
	"os"

	"golang.org/x/term"

	"go.trai.ch/relock/internal/core/domain"
)

// Classify determines whether the updater is running inside the project
// devcontainer. The classification is Contained only when markerFile exists
// as a file and markerDir exists as a directory; any other state, including
// stat errors, classifies as Standalone. Classify has no side effects.
func Classify(markerFile, markerDir string) domain.Classification {
	fi, err := os.Stat(markerFile)
	if err != nil || fi.IsDir() {
		return domain.Standalone
	}

	di, err := os.Stat(markerDir)
	if err != nil || !di.IsDir() {
		return domain.Standalone
	}

	return domain.Contained
}

// IsTTY reports whether stderr is attached to a terminal. It is used to pick
// pretty log output when no explicit output flag is given.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
