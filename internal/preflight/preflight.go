// Package preflight verifies the runtime environment before the daemon
// starts accepting instructions.
package preflight

import (
	"errors"
	"fmt"
	"strings"

	"chirp/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("Log directory", cfg.LogDir()))
	results = append(results, CheckFreeSpace("Log disk space", cfg.LogDir(), cfg.Daemon.MinFreeLogMiB))
	return results
}

// Evaluate runs all checks and returns an error naming the failures, or nil
// when everything passed.
func Evaluate(cfg *config.Config) ([]Result, error) {
	results := RunAll(cfg)
	var failed []string
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
	}
	if len(failed) > 0 {
		return results, errors.New("preflight failed: " + strings.Join(failed, "; "))
	}
	return results, nil
}
