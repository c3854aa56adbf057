// Package field models a sampled complex-valued signal in either the time
// or the frequency domain and provides the transforms and phase tooling to
// move between the two: centered FFT/IFFT with energy-preserving
// normalization, phase unwrapping, instantaneous frequency, chirp estimation
// and injection, and power utilities.
//
// The package intentionally does not implement the DFT or the least-squares
// minimizer itself; both are delegated to external backends and treated as
// black boxes. Real-valued projections (intensity, phase) are returned as
// trace values and are not transformable back into fields.
//
// Every operation is non-mutating: it returns a new, independently owned
// Field, so separate fields can be processed in parallel by the caller
// without synchronization.
package field
