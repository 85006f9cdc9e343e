// Package luoshu defines the palace, element and grid types together with
// sentinel errors for grid lookups.
package luoshu

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a row or column outside the 3×3 grid.
	ErrOutOfBounds = errors.New("luoshu: cell out of bounds")
	// ErrUnknownPalace indicates a palace number outside 1..9.
	ErrUnknownPalace = errors.New("luoshu: unknown palace")
)

// Size is the side length of the grid; Count is the number of palaces.
const (
	Size  = 3
	Count = Size * Size
)

// Palace identifies one of the nine cells by its Lo Shu number.
type Palace int

// Palaces by Lo Shu number.
const (
	Kan    Palace = 1 // 坎一宫, north
	Kun    Palace = 2 // 坤二宫, south-west
	Zhen   Palace = 3 // 震三宫, east
	Xun    Palace = 4 // 巽四宫, south-east
	Center Palace = 5 // 中五宫
	Qian   Palace = 6 // 乾六宫, north-west
	Dui    Palace = 7 // 兑七宫, west
	Gen    Palace = 8 // 艮八宫, north-east
	Li     Palace = 9 // 离九宫, south
)

// Element is one of the five classical elements.
type Element int

// Elements.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = [...]string{Wood: "木", Fire: "火", Earth: "土", Metal: "金", Water: "水"}

// String returns the native-script element name.
func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return ""
	}

	return elementNames[e]
}

// MarshalText implements encoding.TextMarshaler.
func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// Info is the static metadata permanently bound to a palace.
type Info struct {
	Palace  Palace
	Name    string
	Trigram string
	Element Element
	Row     int
	Col     int
}

// Grid is the immutable 3×3 arrangement of palaces.
// cells[row][col] holds the palace drawn at that cell.
type Grid struct {
	cells [Size][Size]Palace
}
