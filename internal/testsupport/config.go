// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"chirp/internal/config"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
// The worker poll timeout is shortened so drain loops finish quickly.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.SocketPath = filepath.Join(dir, "chirpd.sock")
	cfg.Daemon.PopTimeoutMillis = 20

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	return &cfg
}
