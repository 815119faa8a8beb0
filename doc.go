// Package lvlpal computes palindromic radius profiles of sequences in
// linear time.
//
// 🚀 What is lvlpal?
//
//	A small, zero-dependency library built around one question: for every
//	element and every gap of a sequence, how long is the longest
//	palindrome centered there?
//
//		• palindrome/ — Lengths (O(n)), NaiveLengths (O(n²) reference),
//		  Func variants for non-comparable elements, Bounds and Validate
//
// ✨ Why lvlpal?
//
//   - Generic over any comparable element type, not only strings
//   - Pure functions: no globals, no logging, safe to call concurrently
//   - Every result can be checked with palindrome.Validate
//
//	go get github.com/katalvlaran/lvlpal/palindrome
package lvlpal
