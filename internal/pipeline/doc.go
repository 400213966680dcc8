// Package pipeline turns carrier frames into queued instructions. A Driver
// pulls frames from a FrameSource, demodulates each frame's audio segment,
// and hands the decoded instruction to an Enqueuer together with the frame's
// correlation token.
package pipeline
