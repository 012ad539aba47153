// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Resolve, the single place where defaults and setters are combined.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag is consumed by Near, PolicyFor or
//     ValidateFinite and covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package scalar

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// Epsilon is the fixed tolerance of the equality policy, shared by
	// float32 and float64. Composed geometry (a 90° rotation of a unit
	// vector) already drifts past 1e-6, so the tolerance is kept loose.
	Epsilon = 1e-4

	// DefaultEpsilon is the tolerance Near uses when no WithEpsilon is given.
	DefaultEpsilon = Epsilon

	// DefaultValidateNaNInf toggles finite-value validation on FromSlice ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether ingestion must reject NaN and ±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the tolerance used by Near and approximate policies.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 turns Near into strict "<0" comparison, i.e. never equal for
//     floats; use ValidateEpsilon first when eps comes from user input.
func WithEpsilon(eps float64) Option {
	if ValidateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf through FromSlice ingestion.
// Use for buffers that legitimately carry infinities (far-plane sentinels).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidateEpsilon returns ErrInvalidEpsilon for NaN, ±Inf or negative eps.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return ErrInvalidEpsilon
	}

	return nil
}

// Resolve applies setters on top of the documented defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func Resolve(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range opts {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
