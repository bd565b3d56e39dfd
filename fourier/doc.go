// Package fourier implements the iterative radix-2 Cooley-Tukey FFT and
// the real-signal circular cross-correlation built on top of it. Both are
// implemented directly from the textbook rather than through a
// third-party numerical library, the same way this module's other
// algorithmic packages hand-roll Prim's algorithm and union-find: see
// DESIGN.md for the reasoning.
//
// The "pack two real signals into one complex FFT" trick used by
// ConvolveReal is the standard competitive-programming technique for
// halving the number of transforms needed to convolve two real
// sequences.
package fourier
