// Package daemon owns the command execution loop. A single worker goroutine
// drains the instruction queue in arrival order, parses each raw instruction,
// and applies it to the parameter store or task registry. All mutations flow
// through that one goroutine, so execution order always matches enqueue order.
package daemon
