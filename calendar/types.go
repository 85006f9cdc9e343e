package calendar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qimen/cyclic"
	"github.com/katalvlaran/qimen/ganzhi"
)

// ErrUnknownTerm indicates text that names no solar term.
var ErrUnknownTerm = errors.New("calendar: unknown solar term")

// TermCount is the number of solar terms in a year.
const TermCount = 24

// SolarTerm is one of the 24 solar terms, numbered in calendar-year order
// starting from 小寒 (early January).
type SolarTerm int

// Solar terms in calendar-year order.
const (
	MinorCold SolarTerm = iota // 小寒
	MajorCold                  // 大寒
	StartOfSpring              // 立春
	RainWater                  // 雨水
	AwakeningOfInsects         // 惊蛰
	SpringEquinox              // 春分
	ClearAndBright             // 清明
	GrainRain                  // 谷雨
	StartOfSummer              // 立夏
	GrainBuds                  // 小满
	GrainInEar                 // 芒种
	SummerSolstice             // 夏至
	MinorHeat                  // 小暑
	MajorHeat                  // 大暑
	StartOfAutumn              // 立秋
	EndOfHeat                  // 处暑
	WhiteDew                   // 白露
	AutumnEquinox              // 秋分
	ColdDew                    // 寒露
	FrostDescent               // 霜降
	StartOfWinter              // 立冬
	MinorSnow                  // 小雪
	MajorSnow                  // 大雪
	WinterSolstice             // 冬至
)

var termNames = cyclic.NewAlphabet(
	"小寒", "大寒", "立春", "雨水", "惊蛰", "春分",
	"清明", "谷雨", "立夏", "小满", "芒种", "夏至",
	"小暑", "大暑", "立秋", "处暑", "白露", "秋分",
	"寒露", "霜降", "立冬", "小雪", "大雪", "冬至",
)

// String returns the native-script term name.
func (t SolarTerm) String() string { return termNames.At(int(t)) }

// MarshalText implements encoding.TextMarshaler.
func (t SolarTerm) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SolarTerm) UnmarshalText(b []byte) error {
	i, ok := termNames.IndexOf(string(b))
	if !ok {
		return fmt.Errorf("term %q: %w", b, ErrUnknownTerm)
	}
	*t = SolarTerm(i)

	return nil
}

// Boundary is one row of the solar-term table: the term begins on
// Month/Day of every year.
type Boundary struct {
	Month int // 1..12
	Day   int // 1..31
	Term  SolarTerm
}

// Pillars holds the four stem-branch pairs of a moment.
type Pillars struct {
	Year  ganzhi.Pair `json:"year" yaml:"year"`
	Month ganzhi.Pair `json:"month" yaml:"month"`
	Day   ganzhi.Pair `json:"day" yaml:"day"`
	Hour  ganzhi.Pair `json:"hour" yaml:"hour"`
}
