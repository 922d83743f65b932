// Package depstore tracks synced third-party dependencies of the renderer.
//
// The manifest lives inside the dependency directory and records what the
// fetch step produced: name, kind, location and version of each dependency.
// It is a record of the last successful sync, not the freshness check itself.
package depstore

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/zorrock/SORT/pkg/flaterrors"
)

const (
	// ManifestName is the file name of the manifest inside the dependency directory.
	ManifestName = ".sort-deps.yaml"

	manifestVersion = "1.0"
)

// Dependency describes one synced third-party dependency.
type Dependency struct {
	// Name of the dependency (e.g. "tsl")
	Name string `json:"name"`
	// Kind of dependency, e.g. "prebuilt" or "source"
	Kind string `json:"kind"`
	// Location of the dependency on disk or the url it was fetched from
	Location string `json:"location"`
	// Timestamp when the dependency was synced (RFC3339)
	Timestamp string `json:"timestamp"`
	// Version is the commit or release the dependency was synced against
	Version string `json:"version"`
}

// Manifest is the on-disk record of the last successful dependency sync.
type Manifest struct {
	Version      string       `json:"version"`
	LastSynced   time.Time    `json:"lastSynced"`
	Dependencies []Dependency `json:"dependencies"`
}

var (
	errReadingManifest = errors.New("reading dependency manifest")
	errWritingManifest = errors.New("writing dependency manifest")
	// ErrDependencyNotFound is returned when the manifest has no entry for a name.
	ErrDependencyNotFound = errors.New("dependency not found")
)

// Path returns the manifest path for a dependency directory.
func Path(depDir string) string {
	return filepath.Join(depDir, ManifestName)
}

// Read reads the manifest from the specified path.
// Returns an error if the file doesn't exist.
func Read(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, flaterrors.Join(err, errReadingManifest)
	}

	out := Manifest{} //nolint:exhaustruct // unmarshal

	if err := yaml.Unmarshal(b, &out); err != nil {
		return Manifest{}, flaterrors.Join(err, errReadingManifest)
	}

	if out.Dependencies == nil {
		out.Dependencies = []Dependency{}
	}
	if out.Version == "" {
		out.Version = manifestVersion
	}

	return out, nil
}

// ReadOrCreate reads the manifest from the specified path.
// If the file doesn't exist, it returns an initialized empty manifest.
func ReadOrCreate(path string) (Manifest, error) {
	manifest, err := Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{
				Version:      manifestVersion,
				LastSynced:   time.Now().UTC(),
				Dependencies: []Dependency{},
			}, nil
		}
		return Manifest{}, err
	}
	return manifest, nil
}

// Write writes the manifest to the specified path.
func Write(path string, manifest Manifest) error {
	b, err := yaml.Marshal(manifest)
	if err != nil {
		return flaterrors.Join(err, errWritingManifest)
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return flaterrors.Join(err, errWritingManifest)
	}

	return nil
}

// AddOrUpdate adds a dependency to the manifest or updates an existing entry.
// Entries are keyed by name and kind.
func AddOrUpdate(manifest *Manifest, dep Dependency) {
	if manifest == nil {
		return
	}

	manifest.LastSynced = time.Now().UTC()

	if manifest.Dependencies == nil {
		manifest.Dependencies = []Dependency{}
	}

	for i, existing := range manifest.Dependencies {
		if existing.Name == dep.Name && existing.Kind == dep.Kind {
			manifest.Dependencies[i] = dep
			return
		}
	}

	manifest.Dependencies = append(manifest.Dependencies, dep)
}

// Get finds the dependency entry with the given name.
func Get(manifest Manifest, name string) (Dependency, error) {
	for _, dep := range manifest.Dependencies {
		if dep.Name == name {
			return dep, nil
		}
	}

	return Dependency{}, flaterrors.Join(
		errors.New("no manifest entry with name: "+name),
		ErrDependencyNotFound,
	)
}
