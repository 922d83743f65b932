// Package depsync decides whether the renderer's dependency directory needs
// to be synced and drives the fetch collaborator when it does.
//
// The check is deliberately shallow: a present directory is trusted as-is,
// and a forced sync purges it and re-fetches from scratch.
package depsync
