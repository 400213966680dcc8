// Package queue provides the in-memory instruction FIFO between frame
// producers and the daemon worker.
//
// Any number of producers may Push concurrently without blocking; a single
// consumer drains items in strict arrival order with PopWait, whose bounded
// wait doubles as the mechanism that keeps daemon shutdown latency low when
// the queue is idle. Items are held only in process memory: the queue
// resets on restart by design.
package queue
