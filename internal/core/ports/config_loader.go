package ports

import "go.trai.ch/relock/internal/core/domain"

// ConfigLoader defines the interface for resolving a project layout.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional configuration for the project rooted at root
	// and returns the resolved layout. It returns an error if the config
	// file is unreadable or invalid, or if the manifest is missing.
	Load(root string) (domain.Layout, error)
}
