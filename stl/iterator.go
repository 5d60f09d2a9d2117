// Package stl - the random-access iterator contract.
package stl

// Iterator is the value-method surface shared by every iterator in this
// package. I is the iterator type itself, R what it dereferences to.
// In-place steps (Inc, Dec, AddAssign, ...) have pointer receivers and are
// therefore only in the method set of *I.
type Iterator[I, R any] interface {
	Deref() R
	At(n int) R
	Add(n int) I
	Sub(n int) I
	Distance(o I) int
	Compare(o I) int
	Equal(o I) bool
	NotEqual(o I) bool
	Less(o I) bool
	LessEqual(o I) bool
	Greater(o I) bool
	GreaterEqual(o I) bool
}

// AddTo is offset-plus-iterator; it equals it.Add(n).
func AddTo[I interface{ Add(int) I }](n int, it I) I { return it.Add(n) }

// SubFrom is the offset-on-the-left form of subtraction; it equals it.Sub(n).
func SubFrom[I interface{ Sub(int) I }](n int, it I) I { return it.Sub(n) }
