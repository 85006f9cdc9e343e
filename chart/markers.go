package chart

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/luoshu"
	"github.com/katalvlaran/qimen/plate"
)

// DefaultBirthYear replaces birth-year text that does not parse.
const DefaultBirthYear = 1990

// Analysis notes.
const (
	NoteAuspicious = "三吉门临宫，利于行动。"
	NoteOminous    = "凶门迫宫，诸事不利。"
	NoteNeutral    = "格局平稳，待时而动"
	NoteVoid       = " 逢空亡，吉凶减半。"
)

// ParseBirthYear reads the leading base-10 integer of s after leading white
// space: an optional sign and a run of digits, ignoring whatever follows
// ("1985年" and "1985.0" both yield 1985). Text with no leading digits
// yields DefaultBirthYear.
func ParseBirthYear(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultBirthYear
	}
	y, err := strconv.Atoi(s[:end])
	if err != nil {
		return DefaultBirthYear
	}

	return y
}

// LifeStem returns the heavenly stem of a birth year.
func LifeStem(year int) ganzhi.Stem {
	return calendar.YearPillar(year).Stem
}

// horses is indexed by branch mod 4; the three branches of a triad share it.
var horses = [4]luoshu.Palace{
	luoshu.Gen,  // 申子辰
	luoshu.Qian, // 巳酉丑
	luoshu.Kun,  // 寅午戌
	luoshu.Xun,  // 亥卯未
}

// HorsePalace returns the single palace marked by the hour branch.
func HorsePalace(hour ganzhi.Branch) luoshu.Palace {
	return horses[cyclic.Wrap(hour.Index(), len(horses))]
}

// voids is indexed by leader stem; 甲 and unused stems have none.
var voids = [ganzhi.StemCount][]luoshu.Palace{
	ganzhi.StemWu:   {luoshu.Qian},
	ganzhi.StemJi:   {luoshu.Kun, luoshu.Dui},
	ganzhi.StemGeng: {luoshu.Li, luoshu.Kun},
	ganzhi.StemXin:  {luoshu.Xun},
	ganzhi.StemRen:  {luoshu.Gen, luoshu.Zhen},
	ganzhi.StemGui:  {luoshu.Kan, luoshu.Gen},
}

// VoidPalaces returns the void palaces for a leader stem. The result must
// not be modified.
func VoidPalaces(leader ganzhi.Stem) []luoshu.Palace {
	return voids[leader.Index()]
}

// IsVoid reports whether p is void under leader.
func IsVoid(leader ganzhi.Stem, p luoshu.Palace) bool {
	for _, v := range VoidPalaces(leader) {
		if v == p {
			return true
		}
	}

	return false
}

// Assess returns the auspice of a palace from its door and the note shown
// with it.
func Assess(d plate.Door, void bool) (plate.Auspice, string) {
	a := d.Auspice()
	note := NoteNeutral
	switch a {
	case plate.Auspicious:
		note = NoteAuspicious
	case plate.Ominous:
		note = NoteOminous
	}
	if void {
		note += NoteVoid
	}

	return a, note
}
