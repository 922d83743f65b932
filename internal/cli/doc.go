// Package cli provides the shared entry point for SORT build tool commands.
//
// Every command under cmd/ funnels through Bootstrap, which handles the
// version flags, the --mcp server mode, and exit-code handling, so the
// commands themselves only implement their run function.
package cli
