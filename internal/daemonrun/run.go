// Package daemonrun bootstraps the daemon runtime shared by the chirpd
// binary and the CLI's foreground daemon command.
package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"chirp/internal/config"
	"chirp/internal/daemon"
	"chirp/internal/ipc"
	"chirp/internal/logging"
	"chirp/internal/preflight"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel   string
	SocketPath string
}

// Run starts the chirp daemon runtime loop and blocks until a termination
// signal arrives.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	var logger *slog.Logger
	var err error
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		logger, err = logging.New(logging.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stdout", cfg.LogPath()},
		})
	} else {
		logger, err = logging.NewFromConfig(cfg)
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if err := runPreflight(logger, cfg); err != nil {
		return err
	}

	pidPath := filepath.Join(cfg.LogDir(), "chirpd.pid")
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	d, err := daemon.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Stop()
	registerBuiltinTasks(d, logger)

	socketPath := strings.TrimSpace(opts.SocketPath)
	if socketPath == "" {
		socketPath = cfg.SocketPath()
	}
	ipcServer, err := ipc.NewServer(signalCtx, socketPath, d, logger)
	if err != nil {
		return fmt.Errorf("start IPC server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	if err := d.Start(signalCtx); err != nil {
		logger.Warn("daemon start failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "daemon_start_failed"),
			logging.String(logging.FieldErrorHint, "check for another running instance or stale lock file"))
	}

	<-signalCtx.Done()
	logger.Info("chirp daemon shutting down")
	return nil
}

// registerBuiltinTasks installs the handlers every daemon carries. DISPLAY
// surfaces the frame's correlation token in the log stream; ALERT does the
// same at warning level.
func registerBuiltinTasks(d *daemon.Daemon, logger *slog.Logger) {
	taskLogger := logging.NewComponentLogger(logger, "task")
	d.RegisterTask("DISPLAY", func(_ context.Context, correlationToken string) {
		taskLogger.Info("display",
			logging.String(logging.FieldTask, "DISPLAY"),
			logging.String(logging.FieldCorrelationToken, correlationToken))
	})
	d.RegisterTask("ALERT", func(_ context.Context, correlationToken string) {
		taskLogger.Warn("alert",
			logging.String(logging.FieldTask, "ALERT"),
			logging.String(logging.FieldCorrelationToken, correlationToken))
	})
}

func runPreflight(logger *slog.Logger, cfg *config.Config) error {
	results, err := preflight.Evaluate(cfg)
	for _, result := range results {
		if result.Passed {
			logger.Debug("preflight check passed",
				logging.String("check", result.Name),
				logging.String("detail", result.Detail))
			continue
		}
		logger.Error("preflight check failed",
			logging.String("check", result.Name),
			logging.String("detail", result.Detail),
			logging.String(logging.FieldEventType, "preflight_failed"))
	}
	return err
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}
