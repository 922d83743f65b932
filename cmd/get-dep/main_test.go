//go:build unit

package main

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zorrock/SORT/pkg/depstore"
)

func TestParseForce(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantForce    bool
		wantAnnounce bool
	}{
		{"no args", nil, false, false},
		{"empty slice", []string{}, false, false},
		{"exact TRUE", []string{"TRUE"}, true, true},
		{"lowercase true", []string{"true"}, false, true}, // announcement without force
		{"FALSE", []string{"FALSE"}, false, true},
		{"numeric", []string{"1"}, false, true},
		{"TRUE with extra args", []string{"TRUE", "ignored"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got := parseForce(tt.args, out)

			if got != tt.wantForce {
				t.Errorf("parseForce() = %v, want %v", got, tt.wantForce)
			}

			announced := strings.Contains(out.String(), "Force syncing dependencies.")
			if announced != tt.wantAnnounce {
				t.Errorf("announcement printed = %v, want %v (output: %q)", announced, tt.wantAnnounce, out.String())
			}
		})
	}
}

// archiveServer serves a minimal TSL bundle for sync tests.
func archiveServer(t *testing.T) *httptest.Server {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	fw, err := w.Create("lib/libtsl.a")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	if _, err := fw.Write([]byte("binary")); err != nil {
		t.Fatalf("Failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		_, _ = rw.Write(buf.Bytes())
	}))
	t.Cleanup(server.Close)

	return server
}

func TestSyncDependencies_FreshSync(t *testing.T) {
	server := archiveServer(t)

	depDir := filepath.Join(t.TempDir(), "dependencies")
	envs := Envs{DepDir: depDir, TSLArchiveURL: server.URL + "/tsl_lib_linux.zip"}
	out := &bytes.Buffer{}

	res, err := syncDependencies(context.Background(), envs, false, out)
	if err != nil {
		t.Fatalf("syncDependencies failed: %v", err)
	}

	if !res.Synced || res.Purged {
		t.Errorf("Expected fresh sync without purge, got %+v", res)
	}
	if _, err := os.Stat(filepath.Join(depDir, "lib", "libtsl.a")); err != nil {
		t.Errorf("Expected TSL library to be extracted: %v", err)
	}

	// Manifest records the sync.
	manifest, err := depstore.Read(depstore.Path(depDir))
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	dep, err := depstore.Get(manifest, "tsl")
	if err != nil {
		t.Fatalf("Expected a tsl manifest entry: %v", err)
	}
	if dep.Kind != "prebuilt" {
		t.Errorf("Expected kind 'prebuilt', got %s", dep.Kind)
	}
}

func TestSyncDependencies_UpToDateSkipsFetchAndManifest(t *testing.T) {
	depDir := filepath.Join(t.TempDir(), "dependencies")
	if err := os.MkdirAll(depDir, 0o755); err != nil {
		t.Fatalf("Failed to create dep dir: %v", err)
	}

	// No server: a fetch attempt against this URL would fail loudly.
	envs := Envs{DepDir: depDir, TSLArchiveURL: "http://127.0.0.1:1/tsl.zip"}
	out := &bytes.Buffer{}

	res, err := syncDependencies(context.Background(), envs, false, out)
	if err != nil {
		t.Fatalf("syncDependencies failed: %v", err)
	}

	if res.Synced {
		t.Error("Expected no sync for an existing directory")
	}
	if !strings.Contains(out.String(), "Dependencies are up to date, no need to sync.") {
		t.Errorf("Expected up-to-date message, got: %q", out.String())
	}
	if _, err := os.Stat(depstore.Path(depDir)); !os.IsNotExist(err) {
		t.Error("Expected no manifest to be written when nothing was synced")
	}
}

func TestSyncDependencies_ForcePurges(t *testing.T) {
	server := archiveServer(t)

	depDir := filepath.Join(t.TempDir(), "dependencies")
	if err := os.MkdirAll(depDir, 0o755); err != nil {
		t.Fatalf("Failed to create dep dir: %v", err)
	}
	stale := filepath.Join(depDir, "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatalf("Failed to write stale file: %v", err)
	}

	envs := Envs{DepDir: depDir, TSLArchiveURL: server.URL + "/tsl_lib_linux.zip"}
	out := &bytes.Buffer{}

	res, err := syncDependencies(context.Background(), envs, true, out)
	if err != nil {
		t.Fatalf("syncDependencies failed: %v", err)
	}

	if !res.Purged || !res.Synced {
		t.Errorf("Expected purge and sync, got %+v", res)
	}
	if !strings.Contains(out.String(), "The dependencies are purged.") {
		t.Errorf("Expected purge warning, got: %q", out.String())
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected stale content to be purged")
	}
	if _, err := os.Stat(filepath.Join(depDir, "lib", "libtsl.a")); err != nil {
		t.Errorf("Expected fresh TSL library after forced sync: %v", err)
	}
}

func TestForceLiteralIsCaseSensitive(t *testing.T) {
	if forceLiteral != "TRUE" {
		t.Errorf("Expected force literal 'TRUE', got %s", forceLiteral)
	}
}
