// SPDX-License-Identifier: MIT
// Package: qimen/plate
//
// types.go — closed symbol enumerations and per-palace containers.
//
// Contract:
//   • Star and Door values equal the number of their home palace, so the
//     original arrangement is the identity and needs no lookup table.
//   • The zero value of Star, Door and Deity is None and is used only by
//     the center palace, which has no ring slot.
//   • Door carries its auspice class as static data.

package plate

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/luoshu"
)

// Star is one of the nine stars. Its value is its home palace.
type Star int

// Stars.
const (
	StarNone  Star = 0
	StarPeng  Star = 1 // 天蓬
	StarRui   Star = 2 // 天芮
	StarChong Star = 3 // 天冲
	StarFu    Star = 4 // 天辅
	StarQin   Star = 5 // 天禽, never placed on the ring
	StarXin   Star = 6 // 天心
	StarZhu   Star = 7 // 天柱
	StarRen   Star = 8 // 天任
	StarYing  Star = 9 // 天英
)

var starNames = [...]string{"", "天蓬", "天芮", "天冲", "天辅", "天禽", "天心", "天柱", "天任", "天英"}

// String returns the native star name, or "" for StarNone.
func (s Star) String() string {
	if s < 0 || int(s) >= len(starNames) {
		return ""
	}

	return starNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Star) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Home returns the palace the star occupies in the original arrangement.
func (s Star) Home() luoshu.Palace { return luoshu.Palace(s) }

// Auspice is the coarse classification attached to a palace by its door.
type Auspice int

// Auspice classes.
const (
	Neutral Auspice = iota
	Auspicious
	Ominous
)

var auspiceNames = [...]string{Neutral: "平", Auspicious: "吉", Ominous: "凶"}

// String returns "吉", "凶" or "平".
func (a Auspice) String() string {
	if a < Neutral || a > Ominous {
		return ""
	}

	return auspiceNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Auspice) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Door is one of the eight doors. Its value is its home palace; the center
// has no door.
type Door int

// Doors.
const (
	DoorNone     Door = 0
	DoorRest     Door = 1 // 休门
	DoorDeath    Door = 2 // 死门
	DoorHarm     Door = 3 // 伤门
	DoorDelusion Door = 4 // 杜门
	DoorOpen     Door = 6 // 开门
	DoorFear     Door = 7 // 惊门
	DoorLife     Door = 8 // 生门
	DoorScenery  Door = 9 // 景门
)

type doorInfo struct {
	name    string
	auspice Auspice
}

// doors is indexed by Door; index 5 is the empty center slot.
var doors = [...]doorInfo{
	DoorNone:     {"", Neutral},
	DoorRest:     {"休门", Auspicious},
	DoorDeath:    {"死门", Ominous},
	DoorHarm:     {"伤门", Ominous},
	DoorDelusion: {"杜门", Neutral},
	5:            {"", Neutral},
	DoorOpen:     {"开门", Auspicious},
	DoorFear:     {"惊门", Ominous},
	DoorLife:     {"生门", Auspicious},
	DoorScenery:  {"景门", Neutral},
}

func (d Door) info() doorInfo {
	if d < 0 || int(d) >= len(doors) {
		return doorInfo{}
	}

	return doors[d]
}

// String returns the native door name, or "" for DoorNone.
func (d Door) String() string { return d.info().name }

// Auspice returns the static classification of the door.
func (d Door) Auspice() Auspice { return d.info().auspice }

// MarshalText implements encoding.TextMarshaler.
func (d Door) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Home returns the palace the door occupies in the original arrangement.
func (d Door) Home() luoshu.Palace { return luoshu.Palace(d) }

// doorAt returns the original door of a ring palace.
func doorAt(p luoshu.Palace) Door {
	if p == luoshu.Center {
		return DoorNone
	}

	return Door(p)
}

// Deity is one of the eight deities.
type Deity int

// Deities in rotation order.
const (
	DeityNone     Deity = iota
	DeityChief          // 值符
	DeitySnake          // 腾蛇
	DeityMoon           // 太阴
	DeityUnion          // 六合
	DeityTiger          // 白虎
	DeityTortoise       // 玄武
	DeityEarth          // 九地
	DeityHeaven         // 九天
)

var deityNames = [...]string{"", "值符", "腾蛇", "太阴", "六合", "白虎", "玄武", "九地", "九天"}

// String returns the native deity name, or "" for DeityNone.
func (d Deity) String() string {
	if d < 0 || int(d) >= len(deityNames) {
		return ""
	}

	return deityNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Deity) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Stack holds the stems shown on one plate of a palace: its own host stem
// and, for the one palace currently carrying the center, a parasite.
type Stack struct {
	Host        ganzhi.Stem
	Parasite    ganzhi.Stem
	HasParasite bool
}

// Single returns a stack with no parasite.
func Single(host ganzhi.Stem) Stack { return Stack{Host: host} }

// WithParasite returns a stack carrying p below host.
func WithParasite(host, p ganzhi.Stem) Stack {
	return Stack{Host: host, Parasite: p, HasParasite: true}
}

// Contains reports whether s appears anywhere in the stack.
func (st Stack) Contains(s ganzhi.Stem) bool {
	return st.Host == s || (st.HasParasite && st.Parasite == s)
}

// Stems lists the stack parasite first, host second.
func (st Stack) Stems() []ganzhi.Stem {
	if st.HasParasite {
		return []ganzhi.Stem{st.Parasite, st.Host}
	}

	return []ganzhi.Stem{st.Host}
}

// String renders the stack as its stems, parasite first.
func (st Stack) String() string {
	if st.HasParasite {
		return st.Parasite.String() + st.Host.String()
	}

	return st.Host.String()
}

// stackWire is the encoded form: the parasite key is absent when unused.
type stackWire struct {
	Host     ganzhi.Stem  `json:"host" yaml:"host"`
	Parasite *ganzhi.Stem `json:"parasite,omitempty" yaml:"parasite,omitempty"`
}

func (st Stack) wire() stackWire {
	w := stackWire{Host: st.Host}
	if st.HasParasite {
		p := st.Parasite
		w.Parasite = &p
	}

	return w
}

// MarshalJSON encodes the stack as {"host": "己", "parasite": "壬"}.
func (st Stack) MarshalJSON() ([]byte, error) { return json.Marshal(st.wire()) }

// UnmarshalJSON decodes the form written by MarshalJSON.
func (st *Stack) UnmarshalJSON(b []byte) error {
	var w stackWire
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("plate: decode stack: %w", err)
	}
	*st = Single(w.Host)
	if w.Parasite != nil {
		*st = WithParasite(w.Host, *w.Parasite)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (st Stack) MarshalYAML() (interface{}, error) { return st.wire(), nil }

// Layer holds one symbol per palace, indexed by palace number − 1.
type Layer[T any] [luoshu.Count]T

// At returns the symbol at p. Invalid palaces yield the zero value.
func (l Layer[T]) At(p luoshu.Palace) T {
	var zero T
	if !p.Valid() {
		return zero
	}

	return l[p-1]
}

func (l *Layer[T]) set(p luoshu.Palace, v T) {
	l[p-1] = v
}

// Ring returns the symbols of the eight outer palaces in ring order.
func (l Layer[T]) Ring() []T {
	out := make([]T, 0, luoshu.RingSize)
	for _, p := range luoshu.Ring.Symbols() {
		out = append(out, l.At(p))
	}

	return out
}

// StemPlate is a bijection from the nine palaces to the nine-stem sequence.
// It backs both the earth plate and the hidden stems.
type StemPlate struct {
	Layer[ganzhi.Stem]
}

// Find returns the palace holding s.
func (sp StemPlate) Find(s ganzhi.Stem) (luoshu.Palace, bool) {
	for i, v := range sp.Layer {
		if v == s {
			return luoshu.Palace(i + 1), true
		}
	}

	return 0, false
}

// Leader is the decan leader (旬首) of an hour: the 甲 head of its
// ten-hour block and the stem standing in for that hidden 甲.
type Leader struct {
	Head ganzhi.Pair `json:"head" yaml:"head"`
	Stem ganzhi.Stem `json:"stem" yaml:"stem"`
}

// Label returns the conventional form, e.g. "甲子戊".
func (l Leader) Label() string {
	return l.Head.String() + l.Stem.String()
}

// String implements fmt.Stringer.
func (l Leader) String() string { return l.Label() }

// Anchors are the palaces every rotation is measured against.
type Anchors struct {
	Leader Leader
	// LeaderPalace holds the leader stem on the earth plate.
	LeaderPalace luoshu.Palace
	// HourStem is the hour stem with 甲 replaced by the leader stem.
	HourStem ganzhi.Stem
	// HourPalace holds HourStem on the earth plate.
	HourPalace luoshu.Palace
	// Steps is the branch distance from the leader head to the hour.
	Steps int
	// DoorPalace is the active door palace before center substitution.
	DoorPalace luoshu.Palace
	// Fallback is set when a defensive default replaced a failed lookup.
	Fallback bool
}

// String implements fmt.Stringer for debugging output.
func (a Anchors) String() string {
	return fmt.Sprintf("leader=%s@%d hour=%s@%d door=%d steps=%d",
		a.Leader, a.LeaderPalace, a.HourStem, a.HourPalace, a.DoorPalace, a.Steps)
}
