package palindrome

// NaiveLengths returns the same profile as Lengths by expanding every
// center independently. It runs in O(n²) time and exists as a reference
// for testing Lengths; prefer Lengths everywhere else.
func NaiveLengths[T comparable](seq []T) []int {
	return naiveLengths(len(seq), sliceEqual(seq))
}

// NaiveLengthsString is NaiveLengths over the bytes of s.
func NaiveLengthsString(s string) []int {
	return naiveLengths(len(s), stringEqual(s))
}

// NaiveLengthsFunc is NaiveLengths for n elements compared with equal.
// It returns the same errors as LengthsFunc.
func NaiveLengthsFunc(n int, equal EqualFunc) ([]int, error) {
	if err := checkFuncArgs(n, equal); err != nil {
		return nil, err
	}

	return naiveLengths(n, equal), nil
}

func naiveLengths(n int, equal EqualFunc) []int {
	var (
		size  = profileSize(n)
		best  = make([]int, size)
		k     int
		start int
		end   int
	)

	for k = 0; k < size; k++ {
		// Even k sits on a gap (empty seed), odd k on an element.
		start = k / 2
		end = start + k%2

		// seq[start:end] stays a palindrome.
		for start > 0 && end < n && equal(start-1, end) {
			start--
			end++
		}
		best[k] = end - start
	}

	return best
}
