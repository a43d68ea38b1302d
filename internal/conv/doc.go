// Package conv provides checked integer conversions.
//
// Use it where a value crosses from the generator's fixed-width uint64 domain
// into the host int used for slice indexing. Conversions that are safe by
// construction (lengths, loop indices) use plain casts instead.
package conv
