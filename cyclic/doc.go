// SPDX-License-Identifier: MIT

// Package cyclic centralizes the modular index arithmetic used by every
// layer of the chart engine.
//
// What:
//
//   - Wrap(n, m) normalizes any integer n into [0, m).
//   - Alphabet[T] is a fixed, ordered, read-only symbol sequence whose
//     lookups and steps wrap around its length.
//
// Why:
//
//	The engine walks several incommensurate cycles at once (5, 8, 9, 10,
//	12 and 60 symbols). Routing all of them through one abstraction keeps
//	negative and overflowing indices out of every lookup.
//
// Complexity:
//
//   - Wrap, At: O(1).
//   - IndexOf, Step: O(len) over a fixed, small alphabet.
//
// Alphabets are built once at package initialization by their owners and
// are never mutated afterwards, so they are safe for concurrent use.
package cyclic
