package luoshu

import "github.com/katalvlaran/qimen/cyclic"

// RingSize is the number of outer palaces.
const RingSize = 8

var (
	// Order is the magic-square flight order used for the earth plate,
	// the active-door walk and the hidden stems.
	Order = cyclic.NewAlphabet(Kan, Kun, Zhen, Xun, Center, Qian, Dui, Gen, Li)

	// Ring is the spatial order of the eight outer palaces.
	Ring = cyclic.NewAlphabet(Kan, Gen, Zhen, Xun, Li, Kun, Dui, Qian)
)

// Host returns the ring palace standing in for p: Kun for the center,
// p itself otherwise.
func Host(p Palace) Palace {
	if p == Center {
		return Kun
	}

	return p
}

// RingIndex returns the ring position of Host(p).
// Every valid palace has one; the second result is false for invalid input.
func RingIndex(p Palace) (int, bool) {
	return Ring.IndexOf(Host(p))
}

// OrderIndex returns the magic-square position (0..8) of p.
func OrderIndex(p Palace) (int, bool) {
	return Order.IndexOf(p)
}

// Fly walks steps positions along Order from start, forward when forward
// is true and backward otherwise, wrapping 9→1 and 1→9.
// An invalid start is returned unchanged.
// Complexity: O(1).
func Fly(start Palace, steps int, forward bool) Palace {
	if !forward {
		steps = -steps
	}
	p, ok := Order.Step(start, steps)
	if !ok {
		return start
	}

	return p
}
