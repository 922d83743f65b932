package cli

import (
	"log"
	"os"

	"github.com/zorrock/SORT/internal/version"
)

// Config holds the configuration for CLI bootstrap.
type Config struct {
	// Name is the command name (e.g., "get-dep")
	Name string

	// Version information (typically set via ldflags)
	Version        string
	CommitSHA      string
	BuildTimestamp string

	// RunCLI is the function to execute in normal CLI mode.
	// It receives the positional arguments, with the version and --mcp
	// flags already consumed.
	RunCLI func(args []string) error

	// RunMCP is the function to execute in MCP server mode (optional)
	// If nil, --mcp flag will result in an error
	RunMCP func() error

	// FailureHandler is called when RunCLI returns an error (optional)
	// Receives the error and should print it appropriately
	FailureHandler func(error)
}

// Bootstrap provides a unified entry point for SORT build tools.
// It handles version flags, MCP mode, and CLI execution with standardized error handling.
//
// This function will call os.Exit and never return.
func Bootstrap(cfg Config) {
	versionInfo := version.New(cfg.Name)
	versionInfo.Version = cfg.Version
	versionInfo.CommitSHA = cfg.CommitSHA
	versionInfo.BuildTimestamp = cfg.BuildTimestamp

	args := make([]string, 0, len(os.Args[1:]))

	for _, arg := range os.Args[1:] {
		switch arg {
		case "version", "--version", "-v":
			versionInfo.Print()
			os.Exit(0)
		case "--mcp":
			if cfg.RunMCP == nil {
				log.Printf("Error: MCP mode not supported for %s", cfg.Name)
				os.Exit(1)
			}
			if err := cfg.RunMCP(); err != nil {
				log.Printf("MCP server error: %v", err)
				os.Exit(1)
			}
			os.Exit(0)
		default:
			args = append(args, arg)
		}
	}

	// Normal CLI mode
	if err := cfg.RunCLI(args); err != nil {
		if cfg.FailureHandler != nil {
			cfg.FailureHandler(err)
		}
		os.Exit(1)
	}

	os.Exit(0)
}
