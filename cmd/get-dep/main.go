package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/zorrock/SORT/internal/cli"
	"github.com/zorrock/SORT/internal/depsync"
	"github.com/zorrock/SORT/internal/gitutil"
	"github.com/zorrock/SORT/internal/tslfetch"
	"github.com/zorrock/SORT/internal/util"
	"github.com/zorrock/SORT/pkg/depstore"
	"github.com/zorrock/SORT/pkg/flaterrors"
)

const Name = "get-dep"

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

// ----------------------------------------------------- MAIN ------------------------------------------------------- //

func main() {
	cli.Bootstrap(cli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		RunCLI:         run,
		RunMCP:         runMCPServer,
		FailureHandler: printFailure,
	})
}

// ----------------------------------------------------- RUN -------------------------------------------------------- //

// forceLiteral is the only positional argument value that enables force mode.
const forceLiteral = "TRUE"

// Envs configures the dependency bootstrapper via environment variables.
type Envs struct {
	// DepDir is the dependency directory, relative to the project root.
	DepDir string `env:"SORT_DEP_DIR" envDefault:"dependencies"`

	// TSLArchiveURL overrides the prebuilt TSL bundle URL.
	TSLArchiveURL string `env:"SORT_TSL_URL"`

	// TSLSourceBuild builds TSL from source instead of downloading prebuilt libs.
	TSLSourceBuild bool `env:"SORT_TSL_SOURCE_BUILD"`

	// TSLSourceRepo overrides the TSL git repository for source builds.
	TSLSourceRepo string `env:"SORT_TSL_REPO"`

	// EnvFile is merged into the environment of source build commands.
	EnvFile string `env:"SORT_ENV_FILE"`
}

var errGettingDependencies = errors.New("getting dependencies")

// run executes the dependency bootstrap: decide force vs incremental,
// sync via the TSL fetcher when needed, and record the manifest.
func run(args []string) error {
	envs := Envs{} //nolint:exhaustruct // unmarshal

	if err := env.Parse(&envs); err != nil {
		printUsage()
		return flaterrors.Join(err, errGettingDependencies)
	}

	force := parseForce(args, os.Stdout)

	if _, err := syncDependencies(context.Background(), envs, force, os.Stdout); err != nil {
		return flaterrors.Join(err, errGettingDependencies)
	}

	return nil
}

// parseForce reports whether a force sync was requested and prints the
// announcement when any argument is present.
//
// The announcement fires for ANY argument, not only TRUE. The renderer's
// build scripts have always behaved this way, so it is kept as is.
func parseForce(args []string, out io.Writer) bool {
	if len(args) == 0 {
		return false
	}

	fmt.Fprintln(out, "Force syncing dependencies.")

	return args[0] == forceLiteral
}

// syncDependencies runs the sync and records a manifest entry when the
// fetcher actually ran.
func syncDependencies(ctx context.Context, envs Envs, force bool, out io.Writer) (depsync.Result, error) {
	fetcher := tslfetch.New(tslfetch.Config{
		ArchiveURL:  envs.TSLArchiveURL,
		SourceBuild: envs.TSLSourceBuild,
		SourceRepo:  envs.TSLSourceRepo,
		EnvFile:     envs.EnvFile,
		Out:         out,
	})

	res, err := depsync.Sync(ctx, depsync.Options{
		Dir:     envs.DepDir,
		Force:   force,
		Fetcher: fetcher,
		Out:     out,
	})
	if err != nil {
		return res, err
	}

	if res.Synced {
		if err := recordManifest(envs.DepDir, fetcher); err != nil {
			return res, err
		}
	}

	return res, nil
}

// recordManifest writes a manifest entry for the synced TSL dependency.
func recordManifest(depDir string, fetcher *tslfetch.Fetcher) error {
	path := depstore.Path(depDir)

	manifest, err := depstore.ReadOrCreate(path)
	if err != nil {
		return err
	}

	// Stamp the renderer commit when available; the sync still succeeds
	// outside a git checkout.
	version := "unknown"
	if sha, err := gitutil.GetCurrentCommitSHA(); err == nil && len(sha) >= 7 {
		version = sha[:7]
	}

	depstore.AddOrUpdate(&manifest, depstore.Dependency{
		Name:      tslfetch.DependencyName,
		Kind:      fetcher.Kind(),
		Location:  fetcher.Location(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   version,
	})

	return depstore.Write(path, manifest)
}

func printFailure(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func printUsage() {
	fmt.Printf("Usage: %s [TRUE]\n\n", Name)
	fmt.Printf("Pass TRUE as the only argument to force a clean re-sync.\n\n")
	fmt.Printf("Expected environment variables:\n%s", util.FormatExpectedEnvList[Envs]())
}
