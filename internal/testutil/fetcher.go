// Package testutil provides test doubles for the dependency sync tooling.
package testutil

import (
	"context"
	"os"
	"path/filepath"
)

// FakeFetcher implements depsync.Fetcher for tests. It records each call
// together with the directory contents observed at call time, so tests can
// assert the directory was empty right before the fetch ran.
type FakeFetcher struct {
	// Calls holds the depDir argument of each EnsureDependency call.
	Calls []string

	// EntriesSeen holds, per call, the names found in depDir at call time.
	EntriesSeen [][]string

	// Err is returned by EnsureDependency when set.
	Err error

	// Populate, when set, is written as a file into depDir on success,
	// simulating a fetch that produces content.
	Populate string
}

func (f *FakeFetcher) EnsureDependency(_ context.Context, depDir string) error {
	f.Calls = append(f.Calls, depDir)

	names := []string{}
	if entries, err := os.ReadDir(depDir); err == nil {
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
	}
	f.EntriesSeen = append(f.EntriesSeen, names)

	if f.Err != nil {
		return f.Err
	}

	if f.Populate != "" {
		return os.WriteFile(filepath.Join(depDir, f.Populate), []byte("fetched"), 0o644)
	}

	return nil
}

// CallCount returns the number of EnsureDependency calls.
func (f *FakeFetcher) CallCount() int {
	return len(f.Calls)
}
