// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant and tolerance
// comparisons. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state; the same options always give the same result.
//   - No dead switches: each flag changes behaviour and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultSwapSignCorrection multiplies the determinant by -1 for every
	// effective row swap performed during elimination. Disabling it
	// reproduces the historical unsigned result (see WithLegacySign).
	DefaultSwapSignCorrection = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0
	signCorrection bool
}

// WithEpsilon sets the absolute tolerance for EqualApprox.
// Panics when eps is negative, NaN or Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSwapSignCorrection enables the -1-per-swap determinant correction (default).
func WithSwapSignCorrection() Option {
	return func(o *Options) { o.signCorrection = true }
}

// WithLegacySign disables the swap sign correction: the determinant is the
// bare product of the eliminated diagonal, whose sign is wrong whenever an
// odd number of pivot swaps occurred.
func WithLegacySign() Option {
	return func(o *Options) { o.signCorrection = false }
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SignCorrection reports whether swap sign correction is enabled.
func (o Options) SignCorrection() bool { return o.signCorrection }

// NewOptions resolves setters on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		signCorrection: DefaultSwapSignCorrection,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
