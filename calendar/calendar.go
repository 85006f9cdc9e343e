package calendar

import (
	"time"

	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
)

// Fixed anchors of the sexagenary cycles.
const (
	// AnchorYear is a 甲子 solar year.
	AnchorYear = 1984

	// Solar years begin on SolarYearMonth/SolarYearDay (立春, approximated).
	SolarYearMonth = time.February
	SolarYearDay   = 4

	// hourLate is the clock hour whose hour stem follows the next day.
	hourLate = 23
)

// dayAnchor is a 甲子 civil day.
var dayAnchor = civil(2024, time.January, 1)

// boundaries is ascending by (Month, Day) and covers every term exactly once.
var boundaries = [TermCount]Boundary{
	{1, 6, MinorCold}, {1, 20, MajorCold},
	{2, 4, StartOfSpring}, {2, 19, RainWater},
	{3, 6, AwakeningOfInsects}, {3, 21, SpringEquinox},
	{4, 5, ClearAndBright}, {4, 20, GrainRain},
	{5, 6, StartOfSummer}, {5, 21, GrainBuds},
	{6, 6, GrainInEar}, {6, 21, SummerSolstice},
	{7, 7, MinorHeat}, {7, 23, MajorHeat},
	{8, 8, StartOfAutumn}, {8, 23, EndOfHeat},
	{9, 8, WhiteDew}, {9, 23, AutumnEquinox},
	{10, 8, ColdDew}, {10, 24, FrostDescent},
	{11, 8, StartOfWinter}, {11, 22, MinorSnow},
	{12, 7, MajorSnow}, {12, 22, WinterSolstice},
}

// monthBranches maps every term to the branch of its solar month.
// Two consecutive terms share a month; 立春 opens the 寅 month.
var monthBranches = [TermCount]ganzhi.Branch{
	MinorCold: ganzhi.BranchChou, MajorCold: ganzhi.BranchChou,
	StartOfSpring: ganzhi.BranchYin, RainWater: ganzhi.BranchYin,
	AwakeningOfInsects: ganzhi.BranchMao, SpringEquinox: ganzhi.BranchMao,
	ClearAndBright: ganzhi.BranchChen, GrainRain: ganzhi.BranchChen,
	StartOfSummer: ganzhi.BranchSi, GrainBuds: ganzhi.BranchSi,
	GrainInEar: ganzhi.BranchWu, SummerSolstice: ganzhi.BranchWu,
	MinorHeat: ganzhi.BranchWei, MajorHeat: ganzhi.BranchWei,
	StartOfAutumn: ganzhi.BranchShen, EndOfHeat: ganzhi.BranchShen,
	WhiteDew: ganzhi.BranchYou, AutumnEquinox: ganzhi.BranchYou,
	ColdDew: ganzhi.BranchXu, FrostDescent: ganzhi.BranchXu,
	StartOfWinter: ganzhi.BranchHai, MinorSnow: ganzhi.BranchHai,
	MajorSnow: ganzhi.BranchZi, WinterSolstice: ganzhi.BranchZi,
}

// Terms returns a copy of the boundary table in calendar-year order.
func Terms() []Boundary {
	out := make([]Boundary, TermCount)
	copy(out, boundaries[:])

	return out
}

// TermOf returns the solar term in force on month/day.
// Dates before the first boundary belong to the last term of the
// previous year (冬至).
// Complexity: O(24).
func TermOf(month time.Month, day int) SolarTerm {
	current := boundaries[TermCount-1].Term
	for _, b := range boundaries {
		if int(month) < b.Month || (int(month) == b.Month && day < b.Day) {
			break
		}
		current = b.Term
	}

	return current
}

// Term returns the solar term in force at t.
func Term(t time.Time) SolarTerm {
	return TermOf(t.Month(), t.Day())
}

// MonthBranch returns the branch of the solar month that term belongs to.
func MonthBranch(term SolarTerm) ganzhi.Branch {
	return monthBranches[cyclic.Wrap(int(term), TermCount)]
}

// civil returns the civil date at UTC noon so that day differences are
// exact regardless of the caller's zone or daylight-saving rules.
func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// DayOffset returns the whole number of civil days from the 甲子 anchor
// date to the wall-clock date of t (negative before the anchor).
// The count is exact for every representable year.
func DayOffset(t time.Time) int {
	secs := civil(t.Year(), t.Month(), t.Day()).Unix() - dayAnchor.Unix()

	return int(secs / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// DayPillar returns the day pillar of t's wall-clock date.
func DayPillar(t time.Time) ganzhi.Pair {
	return ganzhi.PairAt(DayOffset(t))
}

// SolarYear returns the year whose pillar governs t: the calendar year,
// or the previous one when t falls before SolarYearMonth/SolarYearDay.
func SolarYear(t time.Time) int {
	y := t.Year()
	if t.Month() < SolarYearMonth || (t.Month() == SolarYearMonth && t.Day() < SolarYearDay) {
		y--
	}

	return y
}

// YearPillar returns the pillar of solar year y.
func YearPillar(y int) ganzhi.Pair {
	return ganzhi.PairAt(y - AnchorYear)
}

// MonthPillar returns the month pillar for the given year stem and term
// using the five-tigers rule: the 寅 month of a year starts at stem
// (yearStem mod 5)·2 + 2.
func MonthPillar(yearStem ganzhi.Stem, term SolarTerm) ganzhi.Pair {
	branch := MonthBranch(term)
	tiger := cyclic.Wrap(yearStem.Index(), 5)*2 + 2
	step := cyclic.Distance(int(ganzhi.BranchYin), int(branch), ganzhi.BranchCount)

	return ganzhi.Pair{Stem: ganzhi.StemAt(tiger + step), Branch: branch}
}

// HourBranch returns the branch of the two-hour bucket containing the
// clock hour (23:00–00:59 is 子).
func HourBranch(hour int) ganzhi.Branch {
	return ganzhi.BranchAt((hour + 1) / 2)
}

// HourPillar returns the hour pillar for a day stem and clock hour using
// the five-rats rule. At hour 23 the day stem advances by one first; the
// caller's day pillar is not affected.
func HourPillar(dayStem ganzhi.Stem, hour int) ganzhi.Pair {
	effective := dayStem
	if hour == hourLate {
		effective = dayStem.Next(1)
	}
	branch := HourBranch(hour)
	stem := ganzhi.StemAt(cyclic.Wrap(effective.Index(), 5)*2 + branch.Index())

	return ganzhi.Pair{Stem: stem, Branch: branch}
}

// Resolve computes the four pillars and the solar term of t.
// Complexity: O(24).
func Resolve(t time.Time) (Pillars, SolarTerm) {
	term := Term(t)
	year := YearPillar(SolarYear(t))
	day := DayPillar(t)

	return Pillars{
		Year:  year,
		Month: MonthPillar(year.Stem, term),
		Day:   day,
		Hour:  HourPillar(day.Stem, t.Hour()),
	}, term
}
