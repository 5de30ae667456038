// Package app implements the application layer for relock.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/relock/internal/adapters/detector"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/adapters/watcher"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultDebounceWindow is the quiet period before a manifest change
// triggers a rerun in watch mode.
const defaultDebounceWindow = 500 * time.Millisecond

// App represents the main application logic.
type App struct {
	locator  ports.RootLocator
	loader   ports.ConfigLoader
	compiler ports.LockfileCompiler
	syncer   ports.EnvironmentSyncer
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	locator ports.RootLocator,
	loader ports.ConfigLoader,
	compiler ports.LockfileCompiler,
	syncer ports.EnvironmentSyncer,
	watch ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		locator:  locator,
		loader:   loader,
		compiler: compiler,
		syncer:   syncer,
		watcher:  watch,
		logger:   log,
	}
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	// NoSync skips the environment sync even in a contained environment.
	NoSync bool
}

// Update regenerates both lockfiles from the manifest and, in a contained
// environment, reconciles the installed package set against them.
//
// The run is strictly sequential: the dev lockfile is compiled against the
// base lockfile as constraints, and the sync consumes both. The first
// failing step aborts the run; lockfiles already written stay on disk. The
// working directory is restored on every exit path.
func (a *App) Update(ctx context.Context, opts UpdateOptions) (err error) {
	// 1. Discover the project root and resolve its layout.
	root, err := a.locator.Locate(".")
	if err != nil {
		return err
	}

	layout, err := a.loader.Load(root)
	if err != nil {
		return err
	}

	// 2. Classify the environment before touching anything.
	class := detector.Classify(layout.MarkerFile, layout.MarkerDir)
	a.logger.Info(fmt.Sprintf("updating lockfiles in %s (%s)", layout.Root, class))

	// 3. Run with the project root as working directory, restored on all
	// exit paths so the invoking shell is never left somewhere else.
	restore, err := fs.Enter(layout.Root)
	if err != nil {
		return err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	// 4. Stale build metadata confuses the resolver inside the container.
	if class == domain.Contained {
		if err := a.clean(layout.CleanGlobs); err != nil {
			return err
		}
	}

	// 5. Base lockfile.
	prevBase := a.snapshot(layout.BaseOutput)
	a.logger.Info("compiling " + layout.BaseOutput + " (extras: " + strings.Join(layout.BaseExtras, ", ") + ")")
	if err := a.compiler.Compile(ctx, ports.CompileRequest{
		Tool:     layout.CompileTool,
		Manifest: layout.Manifest,
		Extras:   layout.BaseExtras,
		Output:   layout.BaseOutput,
		Upgrade:  true,
	}); err != nil {
		return err
	}

	// The dev compile consumes the base lockfile as constraints; verify it
	// is present and well formed before invoking the resolver again.
	if _, parseErr := a.verifyLockfile(layout.BaseOutput); parseErr != nil {
		return errors.Join(domain.ErrConstraintsMissing, parseErr)
	}
	a.report(layout.BaseOutput, prevBase)

	// 6. Dev lockfile, capped by the base pins.
	prevDev := a.snapshot(layout.DevOutput)
	a.logger.Info("compiling " + layout.DevOutput + " (extras: " + strings.Join(layout.DevExtras, ", ") + ")")
	if err := a.compiler.Compile(ctx, ports.CompileRequest{
		Tool:        layout.CompileTool,
		Manifest:    layout.Manifest,
		Extras:      layout.DevExtras,
		Constraints: layout.BaseOutput,
		Output:      layout.DevOutput,
		Upgrade:     true,
	}); err != nil {
		return err
	}
	a.report(layout.DevOutput, prevDev)

	// 7. Reconcile the contained environment. A failure here surfaces but
	// the freshly written lockfiles stay.
	if class == domain.Contained && !opts.NoSync {
		a.logger.Info("syncing environment to " + layout.BaseOutput + " + " + layout.DevOutput)
		if err := a.syncer.Sync(ctx, ports.SyncRequest{
			Tool:      layout.SyncTool,
			Lockfiles: []string{layout.BaseOutput, layout.DevOutput},
			Elevate:   layout.Elevate,
		}); err != nil {
			return err
		}
	}

	return nil
}

// clean removes the configured stale build-metadata directories. Absent
// matches are not an error.
func (a *App) clean(globs []string) error {
	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrCleanFailed, err), "glob", glob)
		}
		for _, match := range matches {
			a.logger.Info("removing stale " + match)
			if err := os.RemoveAll(match); err != nil {
				return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", match)
			}
		}
	}
	return nil
}

// generation captures one lockfile generation: a content digest for cheap
// unchanged detection and the parsed pins for diffing.
type generation struct {
	digest string
	pins   *domain.Lockfile
}

// snapshot captures a lockfile generation before it is overwritten. A
// missing or unparsable previous generation yields nil pins, which diffs as
// all-added.
func (a *App) snapshot(path string) generation {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated layout
	if err != nil {
		return generation{}
	}
	gen := generation{digest: fs.Digest(data)}
	if lf, parseErr := domain.ParseLockfile(data); parseErr == nil {
		gen.pins = lf
	}
	return gen
}

// verifyLockfile reads and parses a freshly written lockfile.
func (a *App) verifyLockfile(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated layout
	if err != nil {
		return nil, err
	}
	return domain.ParseLockfile(data)
}

// report logs how the regenerated lockfile differs from the previous
// generation. Reporting is best effort and never fails the run.
func (a *App) report(path string, prev generation) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated layout
	if err != nil {
		return
	}

	// Cheap digest comparison before parsing; identical content cannot
	// have pin changes.
	if prev.digest != "" && fs.Digest(data) == prev.digest {
		a.logger.Info(path + " unchanged")
		return
	}

	next, parseErr := domain.ParseLockfile(data)
	if parseErr != nil {
		a.logger.Warn(path + ": could not summarize changes")
		return
	}

	diff := domain.Diff(prev.pins, next)
	if diff.Empty() {
		a.logger.Info(path + ": no pin changes")
		return
	}

	a.logger.Info(fmt.Sprintf("%s: %d added, %d changed, %d removed",
		path, len(diff.Added), len(diff.Changed), len(diff.Removed)))
	for _, line := range strings.Split(diff.Summary(), "\n") {
		a.logger.Info("  " + line)
	}
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Window is the debounce quiet period; zero means the default.
	Window time.Duration
	// NoSync skips the environment sync on every rerun.
	NoSync bool
}

// Watch runs an initial update and then re-runs it whenever the manifest or
// the config file changes. Individual update failures are logged and the
// loop keeps running; only watcher failures or context cancellation end it.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	window := opts.Window
	if window <= 0 {
		window = defaultDebounceWindow
	}

	root, err := a.locator.Locate(".")
	if err != nil {
		return err
	}
	layout, err := a.loader.Load(root)
	if err != nil {
		return err
	}

	if err := a.Update(ctx, UpdateOptions{NoSync: opts.NoSync}); err != nil {
		a.logger.Error(err)
	}

	trigger := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(window, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	manifestPath := layout.ManifestPath()
	configPath := filepath.Join(layout.Root, domain.ConfigFileName)

	// The watcher is not recursive, so a manifest nested below the root
	// needs its own directory watched next to the root's config file.
	watchDirs := []string{filepath.Dir(manifestPath)}
	if watchDirs[0] != layout.Root {
		watchDirs = append(watchDirs, layout.Root)
	}

	if err := a.watcher.Start(ctx, watchDirs); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Path == manifestPath || event.Path == configPath {
				deb.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				a.logger.Info("manifest changed, updating lockfiles")
				if err := a.Update(ctx, UpdateOptions{NoSync: opts.NoSync}); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	err = g.Wait()
	// Drain the debouncer so no pending timer fires after shutdown.
	deb.Flush()
	return err
}
