package palindrome

import "errors"

var (
	// ErrNegativeLength indicates a Func variant was given n < 0.
	ErrNegativeLength = errors.New("palindrome: sequence length must be non-negative")

	// ErrNilEqual indicates a Func variant was given a nil equality callback
	// for a non-empty sequence.
	ErrNilEqual = errors.New("palindrome: equal func is nil")

	// ErrProfileLength indicates a profile whose length is not 2n+1.
	ErrProfileLength = errors.New("palindrome: profile length must be 2n+1")

	// ErrBoundary indicates a non-zero first or last profile slot.
	ErrBoundary = errors.New("palindrome: boundary slots must be zero")

	// ErrParity indicates a negative entry or one whose parity differs
	// from its slot index.
	ErrParity = errors.New("palindrome: entry parity does not match slot")

	// ErrOutOfRange indicates a slot whose derived span leaves the sequence.
	ErrOutOfRange = errors.New("palindrome: span out of range")

	// ErrNotPalindrome indicates a slot whose derived span is not a palindrome.
	ErrNotPalindrome = errors.New("palindrome: span is not a palindrome")

	// ErrNotMaximal indicates a slot whose span could grow by one element
	// on each side and stay a palindrome.
	ErrNotMaximal = errors.New("palindrome: span is not maximal")
)
