package internal

import "golang.org/x/exp/constraints"

// Inequality names a search criterion (LT/LE/GE/GT). This package only
// ever needs GE, but the full taxonomy is kept for documentation
// parity with the search it was adapted from.
type Inequality int

const (
	InequalityLT Inequality = iota
	InequalityLE
	InequalityGE
	InequalityGT
)

// LocateAlpha finds the insertion point for target within the strictly
// ascending slice alphas[0:n]. It returns the smallest index idx such
// that alphas[idx] >= target (an InequalityGE search), and match ==
// true when alphas[idx] == target.
//
// A binary search is safe here only because the bin table is kept
// strictly ascending by alpha at all times; a linear scan would also
// satisfy the contract but costs more for a full bin table.
func LocateAlpha[T constraints.Integer](alphas []T, n int, target T) (idx int, match bool) {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if alphas[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && alphas[lo] == target {
		return lo, true
	}
	return lo, false
}
