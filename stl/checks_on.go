//go:build !stl_nochecks

package stl

// ChecksEnabled reports whether iterator preconditions are verified.
// Build with -tags stl_nochecks to compile the checks out.
const ChecksEnabled = true
