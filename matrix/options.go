// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for expression constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The numeric policy is carried by every view derived from a Dense or
//     Vector, so Set through a row/column view honors the owner's policy.
//   - Writes through iterators (*it.Deref() = v) bypass the policy: the
//     iterator layer has no error path.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on construction and Set.
// Integer element types are always finite, so the flag only matters for floats.
const DefaultValidateNaNInf = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - NaN, +Inf and -Inf are rejected by constructors and checked setters.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
//
// AI-Hints:
//   - Use when ingesting data with known ±Inf placeholders (e.g. "no path"
//     distances) that are sanitized later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}

// isNonFinite reports NaN or ±Inf. Always false for integer element types.
func isNonFinite[T Scalar](v T) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
