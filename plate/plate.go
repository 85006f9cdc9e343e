// SPDX-License-Identifier: MIT

package plate

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/ju"
	"github.com/katalvlaran/qimen/luoshu"
)

// Plate is every distributed layer of one chart.
type Plate struct {
	Ju      ju.Descriptor
	Anchors Anchors
	Earth   StemPlate
	Heaven  Layer[Stack]
	Stars   Layer[Star]
	Doors   Layer[Door]
	Deities Layer[Deity]
	Hidden  StemPlate
	// Trapped is set when the hidden stems started from the center.
	Trapped bool
}

// Build distributes all layers for pattern d and hour pillar hour.
// Complexity: O(9).
func Build(d ju.Descriptor, hour ganzhi.Pair) Plate {
	forward := d.Forward()
	p := Plate{Ju: d}
	p.Earth = Earth(d)
	p.Anchors = Locate(p.Earth, hour, forward)
	p.Stars, p.Heaven = Stars(p.Earth, p.Anchors)
	p.Doors = Doors(p.Anchors)
	p.Deities = Deities(p.Anchors, forward)
	p.Hidden = Hidden(p.Earth, p.Anchors, forward)
	_, p.Trapped = HiddenStart(p.Earth, p.Anchors)

	return p
}

// EarthStack returns the earth stack of palace at.
func (p *Plate) EarthStack(at luoshu.Palace) Stack {
	return EarthStack(p.Earth, at)
}

// HeavenStack returns the heaven stack of palace at and false for the center.
func (p *Plate) HeavenStack(at luoshu.Palace) (Stack, bool) {
	if at == luoshu.Center || !at.Valid() {
		return Stack{}, false
	}

	return p.Heaven.At(at), true
}
