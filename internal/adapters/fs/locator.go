// Package fs provides filesystem adapters: project-root discovery, scoped
// working-directory changes and content digests.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.RootLocator by walking upward until it finds a
// directory containing the manifest file.
type Locator struct {
	// Manifest is the file name marking the project root.
	Manifest string
}

// NewLocator creates a Locator searching for the given manifest file name.
// An empty name falls back to the default manifest.
func NewLocator(manifest string) *Locator {
	if manifest == "" {
		manifest = domain.DefaultManifestName
	}
	return &Locator{Manifest: manifest}
}

// Locate walks up from start and returns the absolute path of the first
// directory containing the manifest.
func (l *Locator) Locate(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Join(domain.ErrRootNotFound, err)
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, l.Manifest)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	err = zerr.With(domain.ErrRootNotFound, "start", abs)
	return "", zerr.With(err, "manifest", l.Manifest)
}

var _ ports.RootLocator = (*Locator)(nil)
