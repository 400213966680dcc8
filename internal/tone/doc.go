// Package tone converts between instruction strings and frequency-band
// modulated audio segments.
//
// The carrier divides the range [0, sampleRate/2] into numBands equal-width
// bands, one per bit of the payload. Bit p of the UTF-8 payload (MSB-first
// within each byte) maps to a sine tone at the center of band p. Decoding
// reverses this: the magnitude spectrum of the whole segment is scanned for
// peaks, each peak sets the bit of the band it falls in, and the resulting
// bit vector is packed back into bytes.
//
// Decode and Encode are pure functions; they hold no state and are safe to
// call concurrently across independent segments.
package tone
