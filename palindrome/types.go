package palindrome

// EqualFunc reports whether the elements at indices i and j are equal.
//
// It must behave as an equivalence relation over the sequence indices and
// must not mutate the sequence. Both Func variants only ever call it with
// 0 ≤ i < j < n.
type EqualFunc func(i, j int) bool

// profileSize returns the number of slots in the profile of an n-element
// sequence.
func profileSize(n int) int {
	return 2*n + 1
}

// checkFuncArgs validates the arguments shared by the Func variants.
func checkFuncArgs(n int, equal EqualFunc) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if equal == nil && n > 0 {
		return ErrNilEqual
	}

	return nil
}

// sliceEqual adapts a comparable slice to an EqualFunc.
func sliceEqual[T comparable](seq []T) EqualFunc {
	return func(i, j int) bool { return seq[i] == seq[j] }
}

// stringEqual adapts a string to a byte-wise EqualFunc.
func stringEqual(s string) EqualFunc {
	return func(i, j int) bool { return s[i] == s[j] }
}
