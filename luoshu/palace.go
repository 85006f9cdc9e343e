package luoshu

import (
	"fmt"
	"strconv"
)

// infos is indexed by palace number; index 0 is unused.
var infos = [Count + 1]Info{
	{},
	{Palace: Kan, Name: "坎一宫", Trigram: "坎", Element: Water, Row: 2, Col: 1},
	{Palace: Kun, Name: "坤二宫", Trigram: "坤", Element: Earth, Row: 0, Col: 2},
	{Palace: Zhen, Name: "震三宫", Trigram: "震", Element: Wood, Row: 1, Col: 0},
	{Palace: Xun, Name: "巽四宫", Trigram: "巽", Element: Wood, Row: 0, Col: 0},
	{Palace: Center, Name: "中五宫", Trigram: "中", Element: Earth, Row: 1, Col: 1},
	{Palace: Qian, Name: "乾六宫", Trigram: "乾", Element: Metal, Row: 2, Col: 2},
	{Palace: Dui, Name: "兑七宫", Trigram: "兑", Element: Metal, Row: 1, Col: 2},
	{Palace: Gen, Name: "艮八宫", Trigram: "艮", Element: Earth, Row: 2, Col: 0},
	{Palace: Li, Name: "离九宫", Trigram: "离", Element: Fire, Row: 0, Col: 1},
}

// Valid reports whether p is one of the nine palaces.
func (p Palace) Valid() bool {
	return p >= Kan && p <= Li
}

// Info returns the static metadata of p.
// Returns ErrUnknownPalace if p is outside 1..9.
func (p Palace) Info() (Info, error) {
	if !p.Valid() {
		return Info{}, fmt.Errorf("palace %d: %w", int(p), ErrUnknownPalace)
	}

	return infos[p], nil
}

// MustInfo is Info for palaces known to be valid, such as the package
// constants and members of Order or Ring. Panics otherwise.
func (p Palace) MustInfo() Info {
	info, err := p.Info()
	if err != nil {
		panic(err)
	}

	return info
}

// String returns the palace name, e.g. "坎一宫", or its number when invalid.
func (p Palace) String() string {
	if !p.Valid() {
		return strconv.Itoa(int(p))
	}

	return infos[p].Name
}

// All returns the nine palaces in ascending number order.
func All() []Palace {
	return Order.Symbols()
}
