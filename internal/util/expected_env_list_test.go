//go:build unit

package util

import (
	"strings"
	"testing"
)

func TestFormatExpectedEnvList(t *testing.T) {
	type envs struct {
		DepDir      string `env:"SORT_DEP_DIR"`
		ArchiveURL  string `env:"SORT_TSL_URL"`
		Required    string `env:"SORT_REQUIRED,required"`
		NotAnEnvVar string
	}

	out := FormatExpectedEnvList[envs]()

	if !strings.Contains(out, "SORT_DEP_DIR") {
		t.Errorf("Expected output to mention SORT_DEP_DIR, got:\n%s", out)
	}
	if !strings.Contains(out, "SORT_REQUIRED") {
		t.Errorf("Expected output to mention SORT_REQUIRED, got:\n%s", out)
	}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.Contains(line, "SORT_REQUIRED") && !strings.Contains(line, "[Required]"):
			t.Errorf("Expected SORT_REQUIRED to be marked [Required], got: %s", line)
		case strings.Contains(line, "SORT_DEP_DIR") && !strings.Contains(line, "[Optional]"):
			t.Errorf("Expected SORT_DEP_DIR to be marked [Optional], got: %s", line)
		}
	}

	if strings.Contains(out, "NotAnEnvVar") {
		t.Errorf("Fields without an env tag must be skipped, got:\n%s", out)
	}
}
