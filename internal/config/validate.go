package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDecode(); err != nil {
		return err
	}
	if err := c.validateDaemon(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDecode() error {
	if c.Decode.NumBands <= 0 {
		return errors.New("decode.num_bands must be positive")
	}
	if c.Decode.SampleRate <= 0 {
		return errors.New("decode.sample_rate must be positive")
	}
	if c.Decode.NumBands > c.Decode.SampleRate/2 {
		return fmt.Errorf("decode.num_bands %d exceeds the %d bins available below the Nyquist frequency", c.Decode.NumBands, c.Decode.SampleRate/2)
	}
	if c.Decode.PeakThreshold <= 0 || c.Decode.PeakThreshold > 1 {
		return errors.New("decode.peak_threshold must be in (0, 1]")
	}
	if c.Decode.SegmentSeconds <= 0 {
		return errors.New("decode.segment_seconds must be positive")
	}
	return nil
}

func (c *Config) validateDaemon() error {
	if c.Daemon.PopTimeoutMillis <= 0 {
		return errors.New("daemon.pop_timeout_ms must be positive")
	}
	if c.Daemon.MinFreeLogMiB < 0 {
		return errors.New("daemon.min_free_log_mib must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
