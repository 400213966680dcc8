// Command chirp is the control CLI for the chirp daemon. It starts and stops
// the background process over its Unix socket, submits instructions, inspects
// parameters and tasks, and offers offline encode/decode of raw PCM segments.
package main
