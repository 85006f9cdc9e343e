// SPDX-License-Identifier: MIT

package cyclic

// Wrap returns n reduced into the half-open range [0, m).
// Unlike the % operator the result is never negative.
// Panics if m <= 0: every caller passes a fixed alphabet size.
// Complexity: O(1).
func Wrap(n, m int) int {
	if m <= 0 {
		panic("cyclic: Wrap with non-positive modulus")
	}
	r := n % m
	if r < 0 {
		r += m
	}

	return r
}

// Distance returns the forward distance from index a to index b on a
// cycle of length m, i.e. Wrap(b-a, m).
// Complexity: O(1).
func Distance(a, b, m int) int {
	return Wrap(b-a, m)
}

// Alphabet is an immutable ordered sequence of symbols treated as a cycle.
type Alphabet[T comparable] struct {
	symbols []T
}

// NewAlphabet copies symbols into a new Alphabet.
// Panics on an empty sequence; alphabets are package-level fixtures.
func NewAlphabet[T comparable](symbols ...T) Alphabet[T] {
	if len(symbols) == 0 {
		panic("cyclic: NewAlphabet with no symbols")
	}
	cp := make([]T, len(symbols))
	copy(cp, symbols)

	return Alphabet[T]{symbols: cp}
}

// Len reports the number of symbols.
func (a Alphabet[T]) Len() int {
	return len(a.symbols)
}

// At returns the symbol at index i after wrapping i into the alphabet.
// Complexity: O(1).
func (a Alphabet[T]) At(i int) T {
	return a.symbols[Wrap(i, len(a.symbols))]
}

// IndexOf returns the position of s and true, or (-1, false) when s is not
// a member.
// Complexity: O(Len).
func (a Alphabet[T]) IndexOf(s T) (int, bool) {
	for i, v := range a.symbols {
		if v == s {
			return i, true
		}
	}

	return -1, false
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet[T]) Contains(s T) bool {
	_, ok := a.IndexOf(s)

	return ok
}

// Step returns the symbol n positions after from (before it when n < 0).
// The second result is false when from is not a member.
// Complexity: O(Len).
func (a Alphabet[T]) Step(from T, n int) (T, bool) {
	i, ok := a.IndexOf(from)
	if !ok {
		var zero T

		return zero, false
	}

	return a.At(i + n), true
}

// Walk returns count symbols starting at index start, moving forward one
// position per element when forward is true and backward otherwise.
// Complexity: O(count).
func (a Alphabet[T]) Walk(start, count int, forward bool) []T {
	dir := 1
	if !forward {
		dir = -1
	}
	out := make([]T, count)
	for i := 0; i < count; i++ {
		out[i] = a.At(start + dir*i)
	}

	return out
}

// Symbols returns a copy of the underlying sequence.
func (a Alphabet[T]) Symbols() []T {
	cp := make([]T, len(a.symbols))
	copy(cp, a.symbols)

	return cp
}
