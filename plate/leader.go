package plate

import (
	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/luoshu"
)

type leaderStem struct {
	stem ganzhi.Stem
	ok   bool
}

// leaderStems is indexed by the branch of a 甲 head and names the stem that
// hides it. Odd branches never head a decan and are left unset.
var leaderStems = [ganzhi.BranchCount]leaderStem{
	ganzhi.BranchZi:   {ganzhi.StemWu, true},   // 甲子
	ganzhi.BranchXu:   {ganzhi.StemJi, true},   // 甲戌
	ganzhi.BranchShen: {ganzhi.StemGeng, true}, // 甲申
	ganzhi.BranchWu:   {ganzhi.StemXin, true},  // 甲午
	ganzhi.BranchChen: {ganzhi.StemRen, true},  // 甲辰
	ganzhi.BranchYin:  {ganzhi.StemGui, true},  // 甲寅
}

// FindLeader returns the decan leader of hour. The second result is false
// when hour is not a valid sexagenary pair and the 甲子 leader was assumed.
// Complexity: O(1).
func FindLeader(hour ganzhi.Pair) (Leader, bool) {
	diff := cyclic.Distance(hour.Stem.Index(), hour.Branch.Index(), ganzhi.BranchCount)
	ls := leaderStems[diff]
	if !ls.ok {
		return Leader{Head: ganzhi.Pair{Stem: ganzhi.StemJia, Branch: ganzhi.BranchZi}, Stem: ganzhi.StemWu}, false
	}

	return Leader{
		Head: ganzhi.Pair{Stem: ganzhi.StemJia, Branch: ganzhi.BranchAt(diff)},
		Stem: ls.stem,
	}, true
}

// EffectiveStem returns the hour stem with 甲 replaced by the leader stem.
func EffectiveStem(hour ganzhi.Pair, l Leader) ganzhi.Stem {
	if hour.Stem == ganzhi.StemJia {
		return l.Stem
	}

	return hour.Stem
}

// Locate resolves the anchors of hour on earth. forward is the polarity
// direction used for the active-door walk.
//
// Fallbacks: a leader stem missing from the plate yields the center, an
// hour stem missing from the plate yields Kan. Both set Anchors.Fallback
// and cannot happen for plates built by Earth.
// Complexity: O(9).
func Locate(earth StemPlate, hour ganzhi.Pair, forward bool) Anchors {
	var a Anchors
	var ok bool

	a.Leader, ok = FindLeader(hour)
	a.Fallback = !ok

	if a.LeaderPalace, ok = earth.Find(a.Leader.Stem); !ok {
		a.LeaderPalace = luoshu.Center
		a.Fallback = true
	}

	a.HourStem = EffectiveStem(hour, a.Leader)
	if a.HourPalace, ok = earth.Find(a.HourStem); !ok {
		a.HourPalace = luoshu.Kan
		a.Fallback = true
	}

	a.Steps = cyclic.Distance(a.Leader.Head.Branch.Index(), hour.Branch.Index(), ganzhi.BranchCount)
	a.DoorPalace = luoshu.Fly(a.LeaderPalace, a.Steps, forward)

	return a
}
