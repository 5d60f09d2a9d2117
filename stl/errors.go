// SPDX-License-Identifier: MIT

// Package stl: precondition sentinels.
// Iterator misuse is a programmer error, so violations panic with an error
// value wrapping one of these sentinels. Recover and match with errors.Is.
package stl

import (
	"errors"
	"fmt"
)

var (
	// ErrExprMismatch reports that two indexed iterators over different
	// expressions were compared or differenced.
	ErrExprMismatch = errors.New("stl: iterators reference different expressions")

	// ErrStorageMismatch reports that two pointer iterators over different
	// backing storage, or with different strides, were compared or differenced.
	ErrStorageMismatch = errors.New("stl: iterators reference different storage or stride")
)

// violated panics with err wrapped in the failing operation's name.
func violated(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
