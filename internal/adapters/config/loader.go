// Package config provides the configuration loader for relock.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader builds a domain.Layout for a project root from the optional
// relock.yaml file found there. A missing file yields the default layout.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration for the project rooted at root and returns
// the resolved layout. The manifest's presence is verified so a broken root
// is reported before any tool runs.
func (l *Loader) Load(root string) (domain.Layout, error) {
	layout := domain.DefaultLayout(root)

	configPath := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(configPath) //nolint:gosec // path is rooted at the discovered project root
	switch {
	case os.IsNotExist(err):
		// No config file: defaults apply.
	case err != nil:
		return domain.Layout{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", configPath)
	default:
		var cfg Configfile
		if err := unmarshalStrict(data, &cfg); err != nil {
			return domain.Layout{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", configPath)
		}
		if cfg.Version == "" {
			l.Logger.Warn(domain.ConfigFileName + " has no version field, assuming \"1\"")
		}
		if err := applyConfig(&layout, &cfg); err != nil {
			return domain.Layout{}, zerr.With(err, "path", configPath)
		}
	}

	if err := layout.Validate(); err != nil {
		return domain.Layout{}, err
	}

	if _, err := os.Stat(layout.ManifestPath()); err != nil {
		manErr := zerr.With(domain.ErrManifestNotFound, "root", root)
		return domain.Layout{}, zerr.With(manErr, "manifest", layout.Manifest)
	}

	return layout, nil
}

// applyConfig overlays the parsed config onto the default layout.
func applyConfig(layout *domain.Layout, cfg *Configfile) error {
	if cfg.Version != "" && cfg.Version != "1" {
		return zerr.With(domain.ErrConfigParseFailed, "version", cfg.Version)
	}

	if cfg.Manifest != "" {
		layout.Manifest = cfg.Manifest
	}
	if cfg.Lockfiles.Base.Output != "" {
		layout.BaseOutput = cfg.Lockfiles.Base.Output
	}
	if len(cfg.Lockfiles.Base.Extras) > 0 {
		layout.BaseExtras = cfg.Lockfiles.Base.Extras
	}
	if cfg.Lockfiles.Dev.Output != "" {
		layout.DevOutput = cfg.Lockfiles.Dev.Output
	}
	if len(cfg.Lockfiles.Dev.Extras) > 0 {
		layout.DevExtras = cfg.Lockfiles.Dev.Extras
	}
	if cfg.Clean != nil {
		layout.CleanGlobs = cfg.Clean
	}
	if cfg.Markers.File != "" {
		layout.MarkerFile = cfg.Markers.File
	}
	if cfg.Markers.Dir != "" {
		layout.MarkerDir = cfg.Markers.Dir
	}
	if len(cfg.Tools.Compile) > 0 {
		layout.CompileTool = cfg.Tools.Compile
	}
	if len(cfg.Tools.Sync) > 0 {
		layout.SyncTool = cfg.Tools.Sync
	}
	if cfg.Sync.Elevate != nil {
		layout.Elevate = *cfg.Sync.Elevate
	}

	return nil
}

var _ ports.ConfigLoader = (*Loader)(nil)

// unmarshalStrict decodes YAML rejecting unknown keys, so typos in the
// config file surface instead of silently falling back to defaults.
func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
