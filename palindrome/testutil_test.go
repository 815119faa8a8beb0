// Package palindrome_test provides helpers shared across *_test.go files
// in this package: deterministic sequence generators and exhaustive word
// enumeration for oracle comparisons.
package palindrome_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpal/palindrome"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed for randomized property tests.
	seedDet = int64(1)

	// randomRounds is the number of random sequences per alphabet size.
	randomRounds = 300

	// randomMaxLen bounds the length of random sequences.
	randomMaxLen = 64
)

// randomSeq returns n symbols drawn uniformly from an alphabet of size k.
// Small k produce long palindromes, which is where mirroring matters.
func randomSeq(rng *rand.Rand, n, k int) []byte {
	var (
		out = make([]byte, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = byte('a' + rng.Intn(k))
	}

	return out
}

// forEachWord calls fn for every word of length n over the first k
// letters of the alphabet. The slice passed to fn is reused.
func forEachWord(n, k int, fn func(w []byte)) {
	var (
		w = make([]byte, n)
		i int
	)
	for i = range w {
		w[i] = 'a'
	}
	for {
		fn(w)
		// Odometer increment; done once every position wrapped.
		for i = n - 1; i >= 0; i-- {
			if w[i] < byte('a'+k-1) {
				w[i]++
				break
			}
			w[i] = 'a'
		}
		if i < 0 {
			return
		}
	}
}

// identicalProfile is the closed-form profile of m identical elements:
// every center grows until it hits the nearer end.
func identicalProfile(m int) []int {
	var (
		size = 2*m + 1
		out  = make([]int, size)
		k    int
	)
	for k = 0; k < size; k++ {
		out[k] = min(k, size-1-k)
	}

	return out
}

// requireProfileInvariants checks the structural properties every profile
// of seq must satisfy, independent of how it was computed.
func requireProfileInvariants(t *testing.T, seq []byte, p []int) {
	t.Helper()

	var n = len(seq)
	require.Len(t, p, 2*n+1, "profile length for %q", seq)
	require.Equal(t, 0, p[0], "first slot for %q", seq)
	require.Equal(t, 0, p[2*n], "last slot for %q", seq)

	var k int
	for k = range p {
		require.Equal(t, k%2, p[k]%2, "parity at slot %d for %q", k, seq)
	}
	require.NoError(t, palindrome.Validate(seq, p), "validate %q", seq)
}
