package tslfetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zorrock/SORT/internal/cmdutil"
	"github.com/zorrock/SORT/internal/util"
)

// buildFromSource clones the TSL repository and builds it with cmake,
// installing the result into depDir.
func (f *Fetcher) buildFromSource(ctx context.Context, depDir string) error {
	repo := f.sourceRepo()

	stagingDir := filepath.Join(os.TempDir(), fmt.Sprintf("sort-dep-%s", uuid.New().String()))
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	srcDir := filepath.Join(stagingDir, "tsl")

	f.printf("Cloning TSL from %s", repo)

	cloneOut := cmdutil.ExecuteCommand(cmdutil.ExecuteInput{
		Command: "git",
		Args:    []string{"clone", "--depth", "1", repo, srcDir},
		EnvFile: f.cfg.EnvFile,
	})
	if cloneOut.ExitCode != 0 {
		return fmt.Errorf("git clone failed (exit %d): %s%s",
			cloneOut.ExitCode, cloneOut.Stderr, cloneOut.Error)
	}

	installPrefix, err := filepath.Abs(depDir)
	if err != nil {
		return fmt.Errorf("failed to resolve install prefix: %w", err)
	}

	buildDir := filepath.Join(srcDir, "build")

	steps := [][]string{
		{"cmake", "-S", srcDir, "-B", buildDir, "-DCMAKE_BUILD_TYPE=Release",
			fmt.Sprintf("-DCMAKE_INSTALL_PREFIX=%s", installPrefix)},
		{"cmake", "--build", buildDir, "--config", "Release"},
		{"cmake", "--install", buildDir},
	}

	for _, step := range steps {
		f.printf("Running %s", step[0]+" "+step[1])

		cmd := exec.CommandContext(ctx, step[0], step[1:]...)
		if err := util.RunCmdWithStdPipes(cmd); err != nil {
			return fmt.Errorf("TSL source build step failed: %w", err)
		}
	}

	return nil
}
