package calendar_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

//----------------------------------------------------------------------------//
// Day pillar
//----------------------------------------------------------------------------//

// TestDayPillar_Anchor checks the anchor date is 甲子 (offset 0).
func TestDayPillar_Anchor(t *testing.T) {
	ts := at(2024, time.January, 1, 12, 0)
	assert.Equal(t, 0, calendar.DayOffset(ts))
	p := calendar.DayPillar(ts)
	assert.Equal(t, ganzhi.StemJia, p.Stem)
	assert.Equal(t, ganzhi.BranchZi, p.Branch)
	assert.Equal(t, 0, p.Index())
}

// TestDayPillar_SixtyDayCycle verifies dates 60 days apart share a pillar,
// including across the anchor and far into the past.
func TestDayPillar_SixtyDayCycle(t *testing.T) {
	bases := []time.Time{
		at(2024, time.January, 1, 0, 0),
		at(1900, time.March, 15, 6, 0),
		at(2031, time.December, 31, 23, 59),
		at(1969, time.July, 20, 20, 17),
	}
	for _, base := range bases {
		later := base.AddDate(0, 0, 60)
		earlier := base.AddDate(0, 0, -60)
		assert.Equal(t, calendar.DayPillar(base), calendar.DayPillar(later), "base %s", base)
		assert.Equal(t, calendar.DayPillar(base), calendar.DayPillar(earlier), "base %s", base)
		assert.Equal(t, calendar.DayPillar(base).Next(1), calendar.DayPillar(base.AddDate(0, 0, 1)))
	}
}

// TestDayPillar_DistantDates covers dates centuries from the anchor, where a
// time.Duration difference would saturate.
func TestDayPillar_DistantDates(t *testing.T) {
	cases := []struct {
		name   string
		ts     time.Time
		offset int
		want   string
	}{
		{"1600-01-01", at(1600, time.January, 1, 9, 0), -154863, "辛酉"},
		{"1600-03-01", at(1600, time.March, 1, 9, 0), -154803, "辛酉"},
		{"2500-06-01", at(2500, time.June, 1, 9, 0), 174007, "辛未"},
		{"2500-07-31", at(2500, time.July, 31, 9, 0), 174067, "辛未"},
		{"0001-01-01", at(1, time.January, 1, 9, 0), -738885, "己卯"},
		{"9999-12-31", at(9999, time.December, 31, 9, 0), 2913173, "丁巳"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.offset, calendar.DayOffset(tc.ts))
			assert.Equal(t, tc.want, calendar.DayPillar(tc.ts).String())
		})
	}
}

// TestDayPillar_Known pins a few independently known day pillars.
func TestDayPillar_Known(t *testing.T) {
	cases := []struct {
		ts   time.Time
		want string
	}{
		{at(2024, time.February, 10, 9, 0), "甲辰"},
		{at(2023, time.December, 31, 9, 0), "癸亥"},
		{at(2024, time.March, 1, 9, 0), "甲子"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, calendar.DayPillar(tc.ts).String(), "%s", tc.ts)
	}
}

// TestDayOffset_IgnoresClock verifies every clock time of a day maps to one offset.
func TestDayOffset_IgnoresClock(t *testing.T) {
	a := calendar.DayOffset(at(2024, time.May, 5, 0, 0))
	b := calendar.DayOffset(at(2024, time.May, 5, 23, 59))
	assert.Equal(t, a, b)

	utc := time.Date(2024, time.May, 5, 1, 0, 0, 0, time.UTC)
	east := time.Date(2024, time.May, 5, 1, 0, 0, 0, time.FixedZone("UTC+14", 14*3600))
	assert.Equal(t, calendar.DayOffset(utc), calendar.DayOffset(east), "wall-clock date is used as-is")
}

//----------------------------------------------------------------------------//
// Solar terms
//----------------------------------------------------------------------------//

func TestTermOf(t *testing.T) {
	cases := []struct {
		name  string
		month time.Month
		day   int
		want  calendar.SolarTerm
	}{
		{"NewYearWrapsToWinterSolstice", time.January, 1, calendar.WinterSolstice},
		{"DayBeforeMinorCold", time.January, 5, calendar.WinterSolstice},
		{"MinorColdBoundary", time.January, 6, calendar.MinorCold},
		{"StartOfSpring", time.February, 4, calendar.StartOfSpring},
		{"DayBeforeStartOfSpring", time.February, 3, calendar.MajorCold},
		{"SummerSolstice", time.June, 21, calendar.SummerSolstice},
		{"LateFrost", time.October, 31, calendar.FrostDescent},
		{"WinterSolsticeBoundary", time.December, 22, calendar.WinterSolstice},
		{"YearEnd", time.December, 31, calendar.WinterSolstice},
		{"MajorSnowEve", time.December, 21, calendar.MajorSnow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendar.TermOf(tc.month, tc.day))
		})
	}
}

// TestTerms_Table checks the table is ascending and covers every term once.
func TestTerms_Table(t *testing.T) {
	terms := calendar.Terms()
	require.Len(t, terms, calendar.TermCount)
	for i, b := range terms {
		assert.Equal(t, calendar.SolarTerm(i), b.Term)
		if i > 0 {
			prev := terms[i-1]
			assert.True(t, prev.Month < b.Month || (prev.Month == b.Month && prev.Day < b.Day),
				"boundary %d not ascending", i)
		}
		assert.Equal(t, b.Term, calendar.TermOf(time.Month(b.Month), b.Day))
	}

	terms[0].Day = 99
	assert.Equal(t, 6, calendar.Terms()[0].Day, "Terms must return a copy")
}

func TestSolarTerm_Text(t *testing.T) {
	assert.Equal(t, "冬至", calendar.WinterSolstice.String())
	assert.Equal(t, "芒种", calendar.GrainInEar.String())

	var term calendar.SolarTerm
	require.NoError(t, term.UnmarshalText([]byte("立春")))
	assert.Equal(t, calendar.StartOfSpring, term)
	assert.ErrorIs(t, term.UnmarshalText([]byte("春节")), calendar.ErrUnknownTerm)
}

//----------------------------------------------------------------------------//
// Year and month pillars
//----------------------------------------------------------------------------//

func TestSolarYear(t *testing.T) {
	assert.Equal(t, 2023, calendar.SolarYear(at(2024, time.February, 3, 23, 59)))
	assert.Equal(t, 2024, calendar.SolarYear(at(2024, time.February, 4, 0, 0)))
	assert.Equal(t, 2023, calendar.SolarYear(at(2024, time.January, 31, 12, 0)))
	assert.Equal(t, 2024, calendar.SolarYear(at(2024, time.December, 31, 12, 0)))
}

func TestYearPillar(t *testing.T) {
	assert.Equal(t, "甲子", calendar.YearPillar(1984).String())
	assert.Equal(t, "庚午", calendar.YearPillar(1990).String())
	assert.Equal(t, "甲辰", calendar.YearPillar(2024).String())
	assert.Equal(t, "癸亥", calendar.YearPillar(1983).String())
	assert.Equal(t, calendar.YearPillar(1924), calendar.YearPillar(1984))
}

// TestMonthPillar verifies the five-tigers rule for the first month of each stem group.
func TestMonthPillar(t *testing.T) {
	cases := []struct {
		yearStem ganzhi.Stem
		want     string
	}{
		{ganzhi.StemJia, "丙寅"},
		{ganzhi.StemJi, "丙寅"},
		{ganzhi.StemYi, "戊寅"},
		{ganzhi.StemBing, "庚寅"},
		{ganzhi.StemDing, "壬寅"},
		{ganzhi.StemWu, "甲寅"},
	}
	for _, tc := range cases {
		got := calendar.MonthPillar(tc.yearStem, calendar.StartOfSpring)
		assert.Equal(t, tc.want, got.String(), "year stem %s", tc.yearStem)
	}

	// Zi and Chou months continue the count past Hai.
	assert.Equal(t, "甲子", calendar.MonthPillar(ganzhi.StemGui, calendar.WinterSolstice).String())
	assert.Equal(t, "乙丑", calendar.MonthPillar(ganzhi.StemGui, calendar.MinorCold).String())
}

func TestMonthBranch(t *testing.T) {
	assert.Equal(t, ganzhi.BranchYin, calendar.MonthBranch(calendar.StartOfSpring))
	assert.Equal(t, ganzhi.BranchZi, calendar.MonthBranch(calendar.WinterSolstice))
	assert.Equal(t, ganzhi.BranchChou, calendar.MonthBranch(calendar.MajorCold))
}

//----------------------------------------------------------------------------//
// Hour pillar
//----------------------------------------------------------------------------//

func TestHourBranch(t *testing.T) {
	want := []ganzhi.Branch{
		0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6,
		6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0,
	}
	for h := 0; h < 24; h++ {
		assert.Equal(t, want[h], calendar.HourBranch(h), "hour %d", h)
	}
}

// TestHourPillar_LateHour verifies hour 23 uses the next day's hour-stem
// formula while keeping the calendar day untouched.
func TestHourPillar_LateHour(t *testing.T) {
	for d := 0; d < 60; d++ {
		day := at(2024, time.January, 1, 23, 30).AddDate(0, 0, d)
		next := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 30, 0, 0, time.UTC)

		p, _ := calendar.Resolve(day)
		q, _ := calendar.Resolve(next)
		assert.Equal(t, q.Hour.Stem, p.Hour.Stem, "day %d", d)
		assert.Equal(t, ganzhi.BranchZi, p.Hour.Branch)
		assert.Equal(t, calendar.DayPillar(day), p.Day)
		assert.NotEqual(t, q.Day, p.Day)
	}
}

// TestResolve_LateHourScenario contrasts 23:30 and 22:30 on the same day.
func TestResolve_LateHourScenario(t *testing.T) {
	late, _ := calendar.Resolve(at(2024, time.January, 1, 23, 30))
	early, _ := calendar.Resolve(at(2024, time.January, 1, 22, 30))

	assert.Equal(t, early.Day, late.Day)
	assert.Equal(t, "丙子", late.Hour.String())
	assert.Equal(t, "乙亥", early.Hour.String())

	withoutAdvance := calendar.HourPillar(late.Day.Stem, 0)
	assert.NotEqual(t, withoutAdvance.Stem, late.Hour.Stem)
}

// TestResolve_AnchorScenario checks the documented 2024-01-01T12:00 chart.
func TestResolve_AnchorScenario(t *testing.T) {
	p, term := calendar.Resolve(at(2024, time.January, 1, 12, 0))
	assert.Equal(t, calendar.WinterSolstice, term)
	assert.Equal(t, "癸卯", p.Year.String())
	assert.Equal(t, "甲子", p.Month.String())
	assert.Equal(t, "甲子", p.Day.String())
	assert.Equal(t, "庚午", p.Hour.String())
}

// TestResolve_AllPairsValid sweeps a year hourly and checks every pillar is a
// member of the 60-cycle.
func TestResolve_AllPairsValid(t *testing.T) {
	start := at(2025, time.January, 1, 0, 0)
	for h := 0; h < 366*24; h += 5 {
		p, _ := calendar.Resolve(start.Add(time.Duration(h) * time.Hour))
		for _, pair := range []ganzhi.Pair{p.Year, p.Month, p.Day, p.Hour} {
			require.True(t, pair.Valid(), "hour %d: %s", h, pair)
		}
	}
}
