package palindrome

// Lengths — linear time radius profile
//
// Description:
//
//	Lengths returns, for every center of seq, the length of the longest
//	palindrome centered there. The result has 2n+1 entries: slot 2i is
//	the gap before seq[i], slot 2i+1 is seq[i] itself.
//
// Algorithm Outline:
//  1. Keep a cursor i and the length palLen of the palindrome whose right
//     edge sits at i. Its center does not move while it grows.
//  2. Grow: if seq[i-palLen-1] == seq[i], palLen += 2 and i++.
//  3. Otherwise emit palLen, then walk the emitted slots of the left half
//     backwards. Each slot j is d slots away from the left edge. If
//     profile[j] == d the mirrored palindrome on the right touches the
//     right edge and may grow further: restart step 2 with palLen = d.
//     Otherwise append min(d, profile[j]) as the mirrored value.
//  4. If the walk found no edge-touching palindrome, start over from a
//     single element: palLen = 1, i++.
//  5. When i reaches n, emit palLen and mirror the remaining slots until
//     the profile holds 2n+1 entries.
//
// Loop invariants:
//   - seq[i-palLen:i] is a palindrome.
//   - len(profile) >= 2i - palLen after a growth step.
//   - len(profile) < 2i + 1 before every emission.
//
// Complexity:
//
//	Time   = O(n): every step either advances i or appends a slot.
//	Memory = O(n): the profile itself, allocated once.
//
// Example:
//
//	Lengths([]rune("ababa")) // [0 1 0 3 0 5 0 3 0 1 0]
func Lengths[T comparable](seq []T) []int {
	return lengths(len(seq), sliceEqual(seq))
}

// LengthsString is Lengths over the bytes of s. No rune decoding is done.
func LengthsString(s string) []int {
	return lengths(len(s), stringEqual(s))
}

// LengthsFunc is Lengths for a sequence of n elements whose equality is
// decided by equal. Use it when the element type is not comparable.
//
// Errors:
//   - ErrNegativeLength if n < 0.
//   - ErrNilEqual if equal is nil and n > 0.
func LengthsFunc(n int, equal EqualFunc) ([]int, error) {
	if err := checkFuncArgs(n, equal); err != nil {
		return nil, err
	}

	return lengths(n, equal), nil
}

// lengths implements the linear scan over n elements.
func lengths(n int, equal EqualFunc) []int {
	var (
		size    = profileSize(n)
		best    = make([]int, 0, size)
		i       int
		palLen  int
		j       int
		start   int
		end     int
		d       int
		touched bool
	)

	for i < n {
		// Grow the current palindrome; its center stays fixed.
		if i > palLen && equal(i-palLen-1, i) {
			palLen += 2
			i++
			continue
		}

		best = append(best, palLen)

		// Walk the left half from the second-to-last slot down to the left
		// edge. end is one slot past the edge.
		start = len(best) - 2
		end = start - palLen
		touched = false
		for j = start; j > end; j-- {
			d = j - end - 1
			if best[j] == d {
				// The mirror shares the right edge; try to grow it.
				palLen = d
				touched = true
				break
			}
			// The left palindrome may cross the left edge; its mirror
			// is capped by the right edge.
			best = append(best, min(d, best[j]))
		}
		if !touched {
			palLen = 1
			i++
		}
	}

	// The last palindrome cannot grow past the end of seq.
	best = append(best, palLen)

	start = len(best) - 2
	end = start - (size - len(best))
	for j = start; j > end; j-- {
		d = j - end - 1
		best = append(best, min(d, best[j]))
	}

	return best
}
