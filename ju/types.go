package ju

import (
	"github.com/katalvlaran/qimen/calendar"
)

// Polarity is the direction of the chart: Yang walks the magic-square
// order forward, Yin walks it backward.
type Polarity int

// Polarities.
const (
	Yang Polarity = iota
	Yin
)

// Forward reports whether p walks the magic-square order forward.
func (p Polarity) Forward() bool { return p == Yang }

// String returns "阳" or "阴".
func (p Polarity) String() string {
	if p == Yin {
		return "阴"
	}

	return "阳"
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Yuan is one of the three five-day decans.
type Yuan int

// Decans.
const (
	Upper Yuan = iota
	Middle
	Lower
)

var yuanNames = [...]string{Upper: "上元", Middle: "中元", Lower: "下元"}

// String returns the native decan name.
func (y Yuan) String() string {
	if y < Upper || y > Lower {
		return ""
	}

	return yuanNames[y]
}

// MarshalText implements encoding.TextMarshaler.
func (y Yuan) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

// Descriptor is the resolved pattern of one chart. Immutable once built.
type Descriptor struct {
	Term     calendar.SolarTerm `json:"term" yaml:"term"`
	Polarity Polarity           `json:"polarity" yaml:"polarity"`
	Number   int                `json:"number" yaml:"number"`
	Yuan     Yuan               `json:"yuan" yaml:"yuan"`
}

// rule is one row of the per-term table.
type rule struct {
	polarity Polarity
	numbers  [3]int // indexed by Yuan
}
