// Package palindrome computes the palindromic radius profile of a sequence:
// for every element and every gap between elements, the length of the
// longest palindrome centered there.
//
// 🚀 What is the radius profile?
//
//	For a sequence of n elements the profile has 2n+1 slots. Even slots
//	2i describe the gap just before element i (even-length palindromes),
//	odd slots 2i+1 describe element i itself (odd-length palindromes).
//
//	  seq:      a   b   a   b   a
//	  profile: 0 1 0 3 0 5 0 3 0 1 0
//
//	Slots 0 and 2n are always 0. The palindrome for slot k spans
//	seq[lo:hi] where lo, hi = Bounds(k, profile[k]).
//
// ✨ Key features:
//   - Lengths: linear time center expansion that mirrors radii already
//     computed on the left half of the enclosing palindrome.
//   - NaiveLengths: quadratic reference that expands every center from
//     scratch; kept as a test oracle.
//   - Func variants for element types that are not comparable.
//   - Validate: checks a profile for length, parity, palindromicity and
//     maximality of every slot.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlpal/palindrome"
//
//	p := palindrome.LengthsString("yabbadabbadoo")
//	// p[11] == 9  →  "abbadabba"
//
// Performance:
//
//   - Lengths:      O(n) time, O(n) memory
//   - NaiveLengths: O(n²) time, O(n) memory
//
// Concurrency:
//
//	Every call allocates its own profile and only reads its input, so
//	concurrent calls may share a sequence. The recurrence itself is
//	sequential.
package palindrome
