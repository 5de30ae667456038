package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the optional updater configuration file.
	ConfigFileName = "relock.yaml"

	// DefaultManifestName is the manifest the root locator searches for.
	DefaultManifestName = "pyproject.toml"

	// DefaultBaseOutput is the default path of the base lockfile.
	DefaultBaseOutput = "requirements.txt"

	// DefaultDevOutput is the default path of the dev lockfile.
	DefaultDevOutput = "dev-requirements.txt"

	// DefaultMarkerFile is the file whose presence marks a container runtime.
	DefaultMarkerFile = "/.dockerenv"

	// DefaultMarkerDir is the directory whose presence marks the devcontainer workspace.
	DefaultMarkerDir = "/workspaces"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBaseExtras returns the extras resolved into the base lockfile.
func DefaultBaseExtras() []string { return []string{"full"} }

// DefaultDevExtras returns the extras resolved into the dev lockfile.
func DefaultDevExtras() []string { return []string{"full", "dev"} }

// DefaultCleanGlobs returns the build-metadata globs removed before a contained update.
func DefaultCleanGlobs() []string { return []string{"*.egg-info"} }

// DefaultCompileTool returns the argv prefix of the dependency resolver.
func DefaultCompileTool() []string { return []string{"pip-compile"} }

// DefaultSyncTool returns the argv prefix of the environment sync tool.
func DefaultSyncTool() []string { return []string{"pip-sync"} }

// DefaultElevate returns the argv prefix used to elevate the contained sync.
func DefaultElevate() []string { return []string{"sudo"} }

// Layout describes the resolved on-disk layout of one project and the tools
// that operate on it. All file paths except Root, MarkerFile and MarkerDir
// are relative to Root; the update always runs with Root as working directory.
type Layout struct {
	// Root is the absolute project root directory.
	Root string

	// Manifest is the dependency manifest consumed by the resolver.
	Manifest string

	// BaseOutput is the base lockfile written by the first compile pass.
	BaseOutput string

	// DevOutput is the dev lockfile written by the second compile pass,
	// constrained by BaseOutput.
	DevOutput string

	// BaseExtras and DevExtras are the extras groups selected per pass.
	BaseExtras []string
	DevExtras  []string

	// CleanGlobs are build-metadata directories removed before a contained update.
	CleanGlobs []string

	// MarkerFile and MarkerDir jointly classify the environment as Contained.
	MarkerFile string
	MarkerDir  string

	// CompileTool, SyncTool and Elevate are argv prefixes for the external tools.
	CompileTool []string
	SyncTool    []string
	Elevate     []string
}

// DefaultLayout returns the layout of a project rooted at root with all
// configuration left at its defaults.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:        root,
		Manifest:    DefaultManifestName,
		BaseOutput:  DefaultBaseOutput,
		DevOutput:   DefaultDevOutput,
		BaseExtras:  DefaultBaseExtras(),
		DevExtras:   DefaultDevExtras(),
		CleanGlobs:  DefaultCleanGlobs(),
		MarkerFile:  DefaultMarkerFile,
		MarkerDir:   DefaultMarkerDir,
		CompileTool: DefaultCompileTool(),
		SyncTool:    DefaultSyncTool(),
		Elevate:     DefaultElevate(),
	}
}

// Validate checks that the lockfile outputs stay inside the project root.
func (l Layout) Validate() error {
	for _, out := range []string{l.BaseOutput, l.DevOutput} {
		if filepath.IsAbs(out) || escapesRoot(out) {
			return ErrOutputOutsideRoot
		}
	}
	return nil
}

// ManifestPath returns the absolute path of the manifest.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Root, l.Manifest)
}

func escapesRoot(rel string) bool {
	clean := filepath.Clean(rel)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
