// Package pulse generates canonical time-domain pulse shapes as ready-made
// fields: Gaussian and hyperbolic-secant envelopes with optional linear
// chirp. The package only synthesizes; analysis and transforms stay in the
// field package.
package pulse
