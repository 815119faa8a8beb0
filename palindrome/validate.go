// Package palindrome - profile validation.
//
// Validate re-derives each slot's span with Bounds and checks it against
// the sequence. The checks run in a fixed order so the reported error is
// deterministic:
//
//	length -> boundary slots -> per slot (parity -> range -> palindrome -> maximality)
//
// No panics on user input; every failure is a sentinel from errors.go,
// wrapped with the offending slot index.
package palindrome

import "fmt"

// Bounds maps profile slot k holding a palindrome of the given length to
// the half-open span [lo, hi) of sequence indices it covers.
//
//	lo = k/2 - length/2
//	hi = lo + length
//
// Complexity: O(1).
func Bounds(k, length int) (lo, hi int) {
	lo = k/2 - length/2
	hi = lo + length

	return lo, hi
}

// Validate reports whether profile is the radius profile of seq.
// It returns nil on success, or the first violation found:
//   - ErrProfileLength if len(profile) != 2n+1.
//   - ErrBoundary if profile[0] or profile[2n] is not zero.
//   - ErrParity, ErrOutOfRange, ErrNotPalindrome or ErrNotMaximal for the
//     first offending slot, wrapped with its index.
//
// Complexity: O(n + Σ profile[k]) time, O(1) extra memory.
func Validate[T comparable](seq []T, profile []int) error {
	return validate(len(seq), sliceEqual(seq), profile)
}

// ValidateFunc is Validate for n elements compared with equal.
// Argument errors are the same as for LengthsFunc.
func ValidateFunc(n int, equal EqualFunc, profile []int) error {
	if err := checkFuncArgs(n, equal); err != nil {
		return err
	}

	return validate(n, equal, profile)
}

func validate(n int, equal EqualFunc, profile []int) error {
	var (
		size   = profileSize(n)
		k      int
		length int
		lo, hi int
		a, b   int
	)

	if len(profile) != size {
		return fmt.Errorf("%w: got %d, want %d", ErrProfileLength, len(profile), size)
	}
	if profile[0] != 0 || profile[size-1] != 0 {
		return ErrBoundary
	}

	for k = 0; k < size; k++ {
		length = profile[k]
		if length < 0 || length%2 != k%2 {
			return fmt.Errorf("%w: index %d", ErrParity, k)
		}

		lo, hi = Bounds(k, length)
		if lo < 0 || hi > n {
			return fmt.Errorf("%w: index %d", ErrOutOfRange, k)
		}

		for a, b = lo, hi-1; a < b; a, b = a+1, b-1 {
			if !equal(a, b) {
				return fmt.Errorf("%w: index %d", ErrNotPalindrome, k)
			}
		}

		if lo > 0 && hi < n && equal(lo-1, hi) {
			return fmt.Errorf("%w: index %d", ErrNotMaximal, k)
		}
	}

	return nil
}
