package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecuteCommand executes a shell command with the given parameters.
//
// Environment variables are merged with the following precedence (highest to lowest):
//  1. Inline env vars (input.Env)
//  2. Env file vars (input.EnvFile)
//  3. System environment
//
// Returns ExecuteOutput with exit code, stdout, stderr, and any error message.
func ExecuteCommand(input ExecuteInput) ExecuteOutput {
	cmd := exec.Command(input.Command, input.Args...)

	if input.WorkDir != "" {
		cmd.Dir = input.WorkDir
	}

	// Start with the system environment, then layer env file and inline vars.
	env := os.Environ()

	if input.EnvFile != "" {
		envFileVars, err := LoadEnvFile(input.EnvFile)
		if err != nil {
			return ExecuteOutput{
				ExitCode: -1,
				Error:    fmt.Sprintf("failed to load env file: %v", err),
			}
		}
		for key, value := range envFileVars {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
	}

	for key, value := range input.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := ExecuteOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
		} else {
			output.ExitCode = -1
			output.Error = err.Error()
		}
	}

	return output
}
