// Package sampled provides a generic container for uniformly sampled
// functions: an ordered coordinate axis paired with a value sequence of
// equal length. The package intentionally knows nothing about domains,
// transforms, or physical units; it only guarantees the sampling
// invariants (matching lengths, strictly increasing axis, constant step)
// and supplies copying and elementwise arithmetic for the packages built
// on top of it.
package sampled
