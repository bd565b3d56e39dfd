// Package cost defines the edge-cost contract Prim's algorithm consumes
// (Distance) and the concrete data-driven implementation combining a
// pixel-difference delta with a block-centering regularizer.
//
// The abstract Distance interface in the original C++ source is a
// one-implementation class hierarchy; per this module's design notes it is
// re-architected here as a small interface a caller can satisfy with any
// concrete cost, rather than a deep hierarchy.
package cost
