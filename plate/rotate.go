package plate

import (
	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/luoshu"
)

// ringOffset is the number of ring slots from Host(from) to Host(to).
func ringOffset(from, to luoshu.Palace) int {
	a, _ := luoshu.RingIndex(from)
	b, _ := luoshu.RingIndex(to)

	return cyclic.Distance(a, b, luoshu.RingSize)
}

// rotate calls place for every ring slot with the palace whose original
// content lands there when the ring is turned by offset.
func rotate(offset int, place func(slot, src luoshu.Palace)) {
	for idx := 0; idx < luoshu.RingSize; idx++ {
		place(luoshu.Ring.At(idx), luoshu.Ring.At(idx-offset))
	}
}

// Stars turns the star ring so the star of the leader palace sits on the
// hour-stem palace. Each star brings the earth stack of its home as its
// heaven stack; the star of Kun brings the center's stem along.
// The center keeps StarNone and an empty stack.
// Complexity: O(8).
func Stars(earth StemPlate, a Anchors) (Layer[Star], Layer[Stack]) {
	var stars Layer[Star]
	var heaven Layer[Stack]
	rotate(ringOffset(a.LeaderPalace, a.HourPalace), func(slot, src luoshu.Palace) {
		stars.set(slot, Star(src))
		heaven.set(slot, EarthStack(earth, src))
	})

	return stars, heaven
}

// Doors turns the door ring so the door of the leader palace sits on the
// active door palace. The center keeps DoorNone.
// Complexity: O(8).
func Doors(a Anchors) Layer[Door] {
	var doors Layer[Door]
	rotate(ringOffset(a.LeaderPalace, a.DoorPalace), func(slot, src luoshu.Palace) {
		doors.set(slot, doorAt(src))
	})

	return doors
}

// deityOrder is the rotation order; index 0 sits on the hour-stem palace.
var deityOrder = cyclic.NewAlphabet(
	DeityChief, DeitySnake, DeityMoon, DeityUnion,
	DeityTiger, DeityTortoise, DeityEarth, DeityHeaven,
)

// Deities lays the eight deities from the hour-stem palace, following the
// ring forward when forward is true and backward otherwise.
// Complexity: O(8).
func Deities(a Anchors, forward bool) Layer[Deity] {
	var out Layer[Deity]
	target, _ := luoshu.RingIndex(a.HourPalace)
	for i, p := range luoshu.Ring.Walk(target, luoshu.RingSize, forward) {
		out.set(p, deityOrder.At(i))
	}

	return out
}
