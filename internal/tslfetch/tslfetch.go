// Package tslfetch fetches the TSL (Tiny Shading Language) dependency of the
// renderer. It implements the depsync fetch collaborator contract.
//
// TSL is the only third-party dependency for now. The default mode downloads
// a prebuilt library bundle for the current platform; source-build mode
// clones the TSL repository and builds it with cmake instead.
package tslfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/zorrock/SORT/pkg/flaterrors"
)

// DependencyName identifies the TSL dependency in the sync manifest.
const DependencyName = "tsl"

const defaultSourceRepo = "https://github.com/JiayinCao/Tiny-Shading-Language.git"

// Prebuilt library bundles per platform.
var defaultArchiveURLs = map[string]string{
	"linux":   "https://github.com/JiayinCao/Tiny-Shading-Language/releases/latest/download/tsl_lib_linux.zip",
	"darwin":  "https://github.com/JiayinCao/Tiny-Shading-Language/releases/latest/download/tsl_lib_mac.zip",
	"windows": "https://github.com/JiayinCao/Tiny-Shading-Language/releases/latest/download/tsl_lib_win.zip",
}

// Config configures the TSL fetcher.
type Config struct {
	// ArchiveURL overrides the platform-default prebuilt bundle URL.
	ArchiveURL string

	// SourceBuild clones and builds TSL from source instead of downloading
	// a prebuilt bundle.
	SourceBuild bool

	// SourceRepo is the git repository used for source builds.
	// Defaults to the upstream TSL repository.
	SourceRepo string

	// EnvFile is an optional KEY=VALUE file merged into the environment of
	// source build commands (e.g. proxy or toolchain settings).
	EnvFile string

	// HTTPClient overrides the download client. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Out receives progress messages. Defaults to os.Stdout.
	Out io.Writer
}

// Fetcher fetches and installs TSL into a dependency directory.
type Fetcher struct {
	cfg Config
}

// New creates a Fetcher with the given configuration.
func New(cfg Config) *Fetcher {
	return &Fetcher{cfg: cfg}
}

var (
	errFetchingTSL = errors.New("fetching TSL dependency")

	// ErrUnsupportedPlatform is returned when no prebuilt bundle exists for
	// the current platform and no override URL was configured.
	ErrUnsupportedPlatform = errors.New("no prebuilt TSL bundle for this platform")
)

// EnsureDependency fetches TSL into depDir. The directory must already exist.
func (f *Fetcher) EnsureDependency(ctx context.Context, depDir string) error {
	if f.cfg.SourceBuild {
		if err := f.buildFromSource(ctx, depDir); err != nil {
			return flaterrors.Join(err, errFetchingTSL)
		}
		return nil
	}

	if err := f.fetchPrebuilt(ctx, depDir); err != nil {
		return flaterrors.Join(err, errFetchingTSL)
	}

	return nil
}

// Location reports where TSL is fetched from, for manifest records.
func (f *Fetcher) Location() string {
	if f.cfg.SourceBuild {
		return f.sourceRepo()
	}

	url, _ := f.archiveURL()
	return url
}

// Kind reports the fetch mode, for manifest records.
func (f *Fetcher) Kind() string {
	if f.cfg.SourceBuild {
		return "source"
	}
	return "prebuilt"
}

func (f *Fetcher) sourceRepo() string {
	if f.cfg.SourceRepo != "" {
		return f.cfg.SourceRepo
	}
	return defaultSourceRepo
}

func (f *Fetcher) out() io.Writer {
	if f.cfg.Out != nil {
		return f.cfg.Out
	}
	return os.Stdout
}

func (f *Fetcher) printf(format string, args ...any) {
	fmt.Fprintf(f.out(), format+"\n", args...)
}
