package tslfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// archiveURL resolves the prebuilt bundle URL for the current platform.
func (f *Fetcher) archiveURL() (string, error) {
	if f.cfg.ArchiveURL != "" {
		return f.cfg.ArchiveURL, nil
	}

	url, ok := defaultArchiveURLs[runtime.GOOS]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}

	return url, nil
}

// fetchPrebuilt downloads the platform bundle into a staging directory and
// extracts it into depDir.
func (f *Fetcher) fetchPrebuilt(ctx context.Context, depDir string) error {
	url, err := f.archiveURL()
	if err != nil {
		return err
	}

	stagingDir := filepath.Join(os.TempDir(), fmt.Sprintf("sort-dep-%s", uuid.New().String()))
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	archivePath := filepath.Join(stagingDir, "tsl.zip")

	f.printf("Downloading TSL library from %s", url)

	if err := f.download(ctx, url, archivePath); err != nil {
		return err
	}

	if err := extractZip(archivePath, depDir); err != nil {
		return fmt.Errorf("failed to extract TSL bundle: %w", err)
	}

	return nil
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	client := f.cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	return nil
}
