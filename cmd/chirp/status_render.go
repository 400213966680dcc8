package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"chirp/internal/ipc"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatus(stdout io.Writer, status *ipc.StatusResponse) {
	colorize := shouldColorize(stdout)

	for _, line := range renderSectionHeader("Daemon", colorize) {
		fmt.Fprintln(stdout, line)
	}
	stateKind := statusWarn
	if status.Running {
		stateKind = statusOK
	}
	fmt.Fprintln(stdout, renderStatusLine("State", stateKind, status.State, colorize))
	if status.PID > 0 {
		fmt.Fprintln(stdout, renderStatusLine("PID", statusInfo, strconv.Itoa(status.PID), colorize))
	}
	if status.LockPath != "" {
		fmt.Fprintln(stdout, renderStatusLine("Lock file", statusInfo, status.LockPath, colorize))
	}
	fmt.Fprintln(stdout)

	for _, line := range renderSectionHeader("Dispatch", colorize) {
		fmt.Fprintln(stdout, line)
	}
	rows := [][2]string{
		{"Queued", strconv.Itoa(status.QueueDepth)},
		{"Dispatched", strconv.FormatInt(status.Dispatched, 10)},
		{"Parameter sets", strconv.FormatInt(status.SetOperations, 10)},
		{"Task runs", strconv.FormatInt(status.TaskRuns, 10)},
		{"Unknown", strconv.FormatInt(status.UnknownInstructions, 10)},
	}
	fmt.Fprintln(stdout, renderTable("Counter", "Value", rows, true))

	taskDetail := "none registered"
	if len(status.Tasks) > 0 {
		taskDetail = strings.Join(status.Tasks, ", ")
	}
	fmt.Fprintln(stdout, renderStatusLine("Tasks", statusInfo, taskDetail, colorize))
	fmt.Fprintln(stdout, renderStatusLine("Parameters", statusInfo, strconv.Itoa(status.ParameterCount), colorize))
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
