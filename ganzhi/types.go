package ganzhi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qimen/cyclic"
)

// Alphabet sizes.
const (
	StemCount   = 10
	BranchCount = 12
	CycleLength = 60
)

// ErrUnknownSymbol indicates text that is not a member of the alphabet
// being decoded.
var ErrUnknownSymbol = errors.New("ganzhi: unknown symbol")

// Stem is one of the ten heavenly stems.
type Stem int

// Heavenly stems in cycle order.
const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// Branch is one of the twelve earthly branches.
type Branch int

// Earthly branches in cycle order.
const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

var (
	stemNames   = cyclic.NewAlphabet("甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸")
	branchNames = cyclic.NewAlphabet("子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥")
)

// StemAt returns the stem at index n wrapped into the 10-cycle.
func StemAt(n int) Stem {
	return Stem(cyclic.Wrap(n, StemCount))
}

// BranchAt returns the branch at index n wrapped into the 12-cycle.
func BranchAt(n int) Branch {
	return Branch(cyclic.Wrap(n, BranchCount))
}

// Index returns the normalized 0..9 index of s.
func (s Stem) Index() int { return cyclic.Wrap(int(s), StemCount) }

// Next returns the stem n positions after s.
func (s Stem) Next(n int) Stem { return StemAt(int(s) + n) }

// String returns the native-script symbol.
func (s Stem) String() string { return stemNames.At(int(s)) }

// MarshalText implements encoding.TextMarshaler.
func (s Stem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stem) UnmarshalText(b []byte) error {
	i, ok := stemNames.IndexOf(string(b))
	if !ok {
		return fmt.Errorf("stem %q: %w", b, ErrUnknownSymbol)
	}
	*s = Stem(i)

	return nil
}

// Index returns the normalized 0..11 index of b.
func (b Branch) Index() int { return cyclic.Wrap(int(b), BranchCount) }

// Next returns the branch n positions after b.
func (b Branch) Next(n int) Branch { return BranchAt(int(b) + n) }

// String returns the native-script symbol.
func (b Branch) String() string { return branchNames.At(int(b)) }

// MarshalText implements encoding.TextMarshaler.
func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Branch) UnmarshalText(text []byte) error {
	i, ok := branchNames.IndexOf(string(text))
	if !ok {
		return fmt.Errorf("branch %q: %w", text, ErrUnknownSymbol)
	}
	*b = Branch(i)

	return nil
}
