// Package probe holds the hashing side of ohash: the Key variants, their
// structural hash, prime helpers, and the double-hashing probe sequence.
//
// Everything here is stateless and safe for concurrent use.
package probe
