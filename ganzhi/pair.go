package ganzhi

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/qimen/cyclic"
)

// Pair is one sexagenary stem-branch combination, e.g. 甲子.
// Only pairs whose stem and branch share parity occur in the 60-cycle;
// PairAt never builds any other kind.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// PairAt returns the n-th pair of the 60-cycle, wrapping n first.
// Complexity: O(1).
func PairAt(n int) Pair {
	i := cyclic.Wrap(n, CycleLength)

	return Pair{Stem: StemAt(i), Branch: BranchAt(i)}
}

// Index returns the 0..59 position of p in the 60-cycle.
// It solves i ≡ stem (mod 10), i ≡ branch (mod 12) as (6·stem − 5·branch) mod 60.
// Complexity: O(1).
func (p Pair) Index() int {
	return cyclic.Wrap(6*p.Stem.Index()-5*p.Branch.Index(), CycleLength)
}

// Valid reports whether p is a member of the 60-cycle.
func (p Pair) Valid() bool {
	return cyclic.Wrap(p.Stem.Index(), 2) == cyclic.Wrap(p.Branch.Index(), 2)
}

// Next returns the pair n positions after p in the 60-cycle.
func (p Pair) Next(n int) Pair {
	return PairAt(p.Index() + n)
}

// String returns the two-symbol native form, e.g. "甲子".
func (p Pair) String() string {
	return p.Stem.String() + p.Branch.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly one
// stem symbol followed by one branch symbol.
func (p *Pair) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if r == utf8.RuneError || size >= len(text) {
		return fmt.Errorf("pair %q: %w", text, ErrUnknownSymbol)
	}
	var out Pair
	if err := out.Stem.UnmarshalText(text[:size]); err != nil {
		return fmt.Errorf("pair %q: %w", text, err)
	}
	if err := out.Branch.UnmarshalText(text[size:]); err != nil {
		return fmt.Errorf("pair %q: %w", text, err)
	}
	*p = out

	return nil
}
