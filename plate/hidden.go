package plate

import (
	"github.com/katalvlaran/qimen/luoshu"
)

// HiddenStart returns the palace the hidden stems start from: the active
// door palace, or the center when that palace's earth stem already equals
// the hour stem. The second result reports the trap.
func HiddenStart(earth StemPlate, a Anchors) (luoshu.Palace, bool) {
	if earth.At(a.DoorPalace) == a.HourStem {
		return luoshu.Center, true
	}

	return a.DoorPalace, false
}

// Hidden lays Sequence again, beginning with the hour stem at HiddenStart
// and walking the magic-square order in the polarity direction.
// The result is a bijection like the earth plate.
// Complexity: O(9).
func Hidden(earth StemPlate, a Anchors, forward bool) StemPlate {
	start, _ := HiddenStart(earth, a)
	orderIdx, _ := luoshu.OrderIndex(start)
	stemIdx, ok := Sequence.IndexOf(a.HourStem)
	if !ok {
		stemIdx = 0
	}

	return lay(orderIdx, stemIdx, forward)
}
