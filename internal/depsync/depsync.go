package depsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zorrock/SORT/pkg/flaterrors"
)

// DefaultDir is the dependency directory, relative to the project root the
// tool is invoked from.
const DefaultDir = "dependencies"

// Fetcher is the dependency fetch collaborator. It is called with the
// dependency directory already created and empty (on a fresh or forced sync)
// and must perform whatever fetch or build steps are necessary.
type Fetcher interface {
	EnsureDependency(ctx context.Context, depDir string) error
}

// FetchFunc adapts a plain function to the Fetcher interface.
type FetchFunc func(ctx context.Context, depDir string) error

func (f FetchFunc) EnsureDependency(ctx context.Context, depDir string) error {
	return f(ctx, depDir)
}

// Options configures a sync run.
type Options struct {
	// Dir is the dependency directory. Defaults to DefaultDir.
	Dir string

	// Force discards an existing dependency directory and re-syncs
	// unconditionally.
	Force bool

	// Fetcher performs the actual fetch when a sync is needed.
	Fetcher Fetcher

	// Out receives user-facing progress messages. Defaults to os.Stdout.
	Out io.Writer
}

// Result reports what a sync run did.
type Result struct {
	// Purged is true when an existing directory was removed (force mode only).
	Purged bool
	// Synced is true when the fetcher ran.
	Synced bool
}

var (
	errSyncingDependencies = errors.New("syncing dependencies")

	// ErrNoFetcher is returned when a sync is needed but no fetcher was configured.
	ErrNoFetcher = errors.New("no dependency fetcher configured")
)

// Sync ensures the dependency directory is in a known-good state.
//
// Force mode purges an existing directory, recreates it empty and always
// runs the fetcher. Otherwise a present directory is trusted and the fetcher
// only runs when the directory is absent. When the fetcher runs, the
// directory exists immediately beforehand, and is empty on force or fresh
// syncs.
func Sync(ctx context.Context, opts Options) (Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}

	res := Result{}

	if opts.Force {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fmt.Fprintln(out, "The dependencies are purged.")

			if err := os.RemoveAll(dir); err != nil {
				return res, flaterrors.Join(err, errSyncingDependencies)
			}

			res.Purged = true
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return res, flaterrors.Join(err, errSyncingDependencies)
		}
	} else {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			// This is not very robust: a broken dependency directory still
			// counts as up to date. Use force mode to recover from that.
			fmt.Fprintln(out, "Dependencies are up to date, no need to sync.")
			return res, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return res, flaterrors.Join(err, errSyncingDependencies)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, flaterrors.Join(err, errSyncingDependencies)
	}

	if opts.Fetcher == nil {
		return res, flaterrors.Join(ErrNoFetcher, errSyncingDependencies)
	}

	if err := opts.Fetcher.EnsureDependency(ctx, dir); err != nil {
		return res, flaterrors.Join(err, errSyncingDependencies)
	}

	res.Synced = true

	return res, nil
}
