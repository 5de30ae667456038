// Package ports defines the core interfaces for the application.
package ports

// RootLocator defines the interface for discovering the project root.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type RootLocator interface {
	// Locate walks upward from start and returns the absolute path of the
	// first directory containing the manifest file. It returns
	// domain.ErrRootNotFound if the filesystem root is reached without a hit.
	Locate(start string) (string, error)
}
