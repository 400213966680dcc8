// Package logging builds the slog loggers used across chirp and fixes the
// structured field vocabulary shared by the daemon, worker, and IPC layers.
//
// Two output formats exist: a compact console handler for interactive use
// and a JSON handler for log files and collection. Attr helpers mirror the
// slog constructors so call sites stay terse, and the Field* constants keep
// key names consistent between components.
package logging
