// Package conv provides safe integer conversion helpers for the regex
// engine's simulator.
//
// It performs bounds checking before narrowing an int to uint32 to
// prevent silent overflow. It panics on overflow (here: a visited-set
// size, states times input length plus one, beyond the uint32 range)
// rather than returning an error.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
