package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and socket configuration.
type Paths struct {
	LogDir     string `toml:"log_dir"`
	SocketPath string `toml:"socket_path"`
}

// Decode contains tuning for the tone demodulator and carrier encoder.
type Decode struct {
	NumBands       int     `toml:"num_bands"`
	PeakThreshold  float64 `toml:"peak_threshold"`
	SampleRate     int     `toml:"sample_rate"`
	SegmentSeconds float64 `toml:"segment_seconds"`
}

// Daemon contains worker-loop timing and startup requirements.
type Daemon struct {
	PopTimeoutMillis int `toml:"pop_timeout_ms"`
	MinFreeLogMiB    int `toml:"min_free_log_mib"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for chirp.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Decode  Decode  `toml:"decode"`
	Daemon  Daemon  `toml:"daemon"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the default config file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/chirp/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("chirp.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the daemon writes into.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create log directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// LogDir returns the daemon's log directory.
func (c *Config) LogDir() string {
	return c.Paths.LogDir
}

// LogPath returns the daemon's log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, "chirpd.log")
}

// SocketPath returns the IPC socket path, defaulting under the log dir.
func (c *Config) SocketPath() string {
	if strings.TrimSpace(c.Paths.SocketPath) != "" {
		return c.Paths.SocketPath
	}
	return filepath.Join(c.Paths.LogDir, "chirpd.sock")
}

// LockPath returns the daemon single-instance lock file path.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "chirpd.lock")
}

// PopTimeout returns the worker's bounded queue wait. This bound is what
// keeps shutdown latency small when the queue sits empty.
func (c *Config) PopTimeout() time.Duration {
	return time.Duration(c.Daemon.PopTimeoutMillis) * time.Millisecond
}

// SegmentDuration returns the fixed duration of one carrier segment.
func (c *Config) SegmentDuration() time.Duration {
	return time.Duration(c.Decode.SegmentSeconds * float64(time.Second))
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the given location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
