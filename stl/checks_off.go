//go:build stl_nochecks

package stl

// ChecksEnabled reports whether iterator preconditions are verified.
const ChecksEnabled = false
