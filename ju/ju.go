package ju

import (
	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
)

// rules is indexed by SolarTerm and covers all 24 terms.
var rules = [calendar.TermCount]rule{
	calendar.WinterSolstice:     {Yang, [3]int{1, 7, 4}},
	calendar.MinorCold:          {Yang, [3]int{2, 8, 5}},
	calendar.MajorCold:          {Yang, [3]int{3, 9, 6}},
	calendar.StartOfSpring:      {Yang, [3]int{8, 5, 2}},
	calendar.RainWater:          {Yang, [3]int{9, 6, 3}},
	calendar.AwakeningOfInsects: {Yang, [3]int{1, 7, 4}},
	calendar.SpringEquinox:      {Yang, [3]int{3, 9, 6}},
	calendar.ClearAndBright:     {Yang, [3]int{4, 1, 7}},
	calendar.GrainRain:          {Yang, [3]int{5, 2, 8}},
	calendar.StartOfSummer:      {Yang, [3]int{4, 1, 7}},
	calendar.GrainBuds:          {Yang, [3]int{5, 2, 8}},
	calendar.GrainInEar:         {Yang, [3]int{6, 3, 9}},

	calendar.SummerSolstice: {Yin, [3]int{9, 3, 6}},
	calendar.MinorHeat:      {Yin, [3]int{8, 2, 5}},
	calendar.MajorHeat:      {Yin, [3]int{7, 1, 4}},
	calendar.StartOfAutumn:  {Yin, [3]int{2, 5, 8}},
	calendar.EndOfHeat:      {Yin, [3]int{1, 4, 7}},
	calendar.WhiteDew:       {Yin, [3]int{9, 3, 6}},
	calendar.AutumnEquinox:  {Yin, [3]int{7, 1, 4}},
	calendar.ColdDew:        {Yin, [3]int{6, 9, 3}},
	calendar.FrostDescent:   {Yin, [3]int{5, 8, 2}},
	calendar.StartOfWinter:  {Yin, [3]int{6, 9, 3}},
	calendar.MinorSnow:      {Yin, [3]int{5, 8, 2}},
	calendar.MajorSnow:      {Yin, [3]int{4, 7, 1}},
}

// yuanByBranch classifies the branch of a Fu-Tou day, indexed by Branch.
var yuanByBranch = [ganzhi.BranchCount]Yuan{
	ganzhi.BranchZi: Upper, ganzhi.BranchWu: Upper, ganzhi.BranchMao: Upper, ganzhi.BranchYou: Upper,
	ganzhi.BranchYin: Middle, ganzhi.BranchShen: Middle, ganzhi.BranchSi: Middle, ganzhi.BranchHai: Middle,
	ganzhi.BranchChen: Lower, ganzhi.BranchXu: Lower, ganzhi.BranchChou: Lower, ganzhi.BranchWei: Lower,
}

// blockDays is the length of one Fu-Tou block.
const blockDays = 5

// FuTou returns the 甲 or 己 day that heads the five-day block containing day.
func FuTou(day ganzhi.Pair) ganzhi.Pair {
	i := day.Index()

	return ganzhi.PairAt(i - cyclic.Wrap(i, blockDays))
}

// YuanOf returns the decan of day by the Fu-Tou rule.
func YuanOf(day ganzhi.Pair) Yuan {
	return yuanByBranch[FuTou(day).Branch.Index()]
}

// Resolve returns the pattern for term and day.
// Complexity: O(1).
func Resolve(term calendar.SolarTerm, day ganzhi.Pair) Descriptor {
	r := rules[cyclic.Wrap(int(term), calendar.TermCount)]
	y := YuanOf(day)

	return Descriptor{
		Term:     term,
		Polarity: r.polarity,
		Number:   r.numbers[y],
		Yuan:     y,
	}
}

// Forward reports whether the pattern walks the magic-square order forward.
func (d Descriptor) Forward() bool { return d.Polarity.Forward() }

// Label returns the conventional pattern name, e.g. "阳遁一局".
func (d Descriptor) Label() string {
	return d.Polarity.String() + "遁" + numerals.At(d.Number-1) + "局"
}

var numerals = cyclic.NewAlphabet("一", "二", "三", "四", "五", "六", "七", "八", "九")
