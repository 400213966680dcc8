package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"chirp/internal/preflight"
	"chirp/internal/testsupport"
)

func TestRunAllPassesForFreshConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Daemon.MinFreeLogMiB = 1

	results, err := preflight.Evaluate(cfg)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Evaluate returned no results")
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("check %s failed: %s", result.Name, result.Detail)
		}
	}
}

func TestCheckDirectoryAccessMissing(t *testing.T) {
	result := preflight.CheckDirectoryAccess("Log directory", filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatal("check passed for missing directory")
	}
}

func TestCheckDirectoryAccessRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result := preflight.CheckDirectoryAccess("Log directory", path)
	if result.Passed {
		t.Fatal("check passed for regular file")
	}
}

func TestCheckFreeSpaceZeroMinimumPasses(t *testing.T) {
	result := preflight.CheckFreeSpace("Log disk space", t.TempDir(), 0)
	if !result.Passed {
		t.Fatalf("check failed with no minimum: %s", result.Detail)
	}
}
