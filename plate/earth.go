package plate

import (
	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/ju"
	"github.com/katalvlaran/qimen/luoshu"
)

// Sequence is the nine-stem order laid onto the palaces. 甲 never appears;
// it hides behind the leader stem.
var Sequence = cyclic.NewAlphabet(
	ganzhi.StemWu, ganzhi.StemJi, ganzhi.StemGeng,
	ganzhi.StemXin, ganzhi.StemRen, ganzhi.StemGui,
	ganzhi.StemDing, ganzhi.StemBing, ganzhi.StemYi,
)

// lay places count stems of Sequence, starting at stemIdx, onto Order
// starting at orderIdx. Forward walks both alphabets in step; backward
// walks the palaces in reverse.
func lay(orderIdx, stemIdx int, forward bool) StemPlate {
	var sp StemPlate
	palaces := luoshu.Order.Walk(orderIdx, Sequence.Len(), forward)
	stems := Sequence.Walk(stemIdx, Sequence.Len(), true)
	for i, p := range palaces {
		sp.set(p, stems[i])
	}

	return sp
}

// Earth lays the earth plate for d: 戊 at palace d.Number, the rest of
// Sequence following the magic-square order in the direction of d.Polarity.
// Complexity: O(9).
func Earth(d ju.Descriptor) StemPlate {
	return lay(d.Number-1, 0, d.Forward())
}

// EarthStack returns the earth stack of p. Kun is the permanent host of the
// center and carries its stem as a parasite.
func EarthStack(earth StemPlate, p luoshu.Palace) Stack {
	if p == luoshu.Kun {
		return WithParasite(earth.At(luoshu.Kun), earth.At(luoshu.Center))
	}

	return Single(earth.At(p))
}
