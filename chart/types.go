package chart

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/ju"
	"github.com/katalvlaran/qimen/luoshu"
	"github.com/katalvlaran/qimen/plate"
)

// Palace is the assembled record of one of the nine positions.
// The center has no deity, star or door and a nil Heaven.
type Palace struct {
	ID       luoshu.Palace  `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Trigram  string         `json:"trigram" yaml:"trigram"`
	Element  luoshu.Element `json:"element" yaml:"element"`
	Position [2]int         `json:"position" yaml:"position,flow"`

	Deity  plate.Deity  `json:"deity" yaml:"deity"`
	Star   plate.Star   `json:"star" yaml:"star"`
	Door   plate.Door   `json:"door" yaml:"door"`
	Heaven *plate.Stack `json:"heaven" yaml:"heaven"`
	Earth  plate.Stack  `json:"earth" yaml:"earth"`
	Hidden ganzhi.Stem  `json:"hidden" yaml:"hidden"`

	Void     bool `json:"void" yaml:"void"`
	Horse    bool `json:"horse" yaml:"horse"`
	LifeStem bool `json:"lifeStem" yaml:"lifeStem"`

	Auspice  plate.Auspice `json:"auspice" yaml:"auspice"`
	Analysis string        `json:"analysis" yaml:"analysis"`
}

// Labels are the display strings of a chart.
type Labels struct {
	Ju     string `json:"ju" yaml:"ju"`         // 阳遁一局
	Term   string `json:"term" yaml:"term"`     // 冬至 上元
	Leader string `json:"leader" yaml:"leader"` // 甲子戊
}

// Chart is a complete hour chart. Palaces are ordered by palace number.
type Chart struct {
	At        time.Time            `json:"at" yaml:"at"`
	BirthYear int                  `json:"birthYear" yaml:"birthYear"`
	Pillars   calendar.Pillars     `json:"pillars" yaml:"pillars"`
	SolarTerm calendar.SolarTerm   `json:"solarTerm" yaml:"solarTerm"`
	Ju        ju.Descriptor        `json:"ju" yaml:"ju"`
	Leader    plate.Leader         `json:"leader" yaml:"leader"`
	Labels    Labels               `json:"labels" yaml:"labels"`
	Palaces   [luoshu.Count]Palace `json:"palaces" yaml:"palaces"`
}

// Palace returns the record of p, or false when p is not 1..9.
func (c *Chart) Palace(p luoshu.Palace) (Palace, bool) {
	if !p.Valid() {
		return Palace{}, false
	}

	return c.Palaces[p-1], true
}

// TermLabel returns the solar term and decan, e.g. "冬至 上元".
func (c *Chart) TermLabel() string {
	return c.SolarTerm.String() + " " + c.Ju.Yuan.String()
}

// Grid returns the palaces in Lo Shu layout, rows top to bottom.
func (c *Chart) Grid() [luoshu.Size][luoshu.Size]Palace {
	var out [luoshu.Size][luoshu.Size]Palace
	g := luoshu.Standard()
	for idx, id := range g.ReadingOrder() {
		row, col := g.Coordinate(idx)
		out[row][col] = c.Palaces[id-1]
	}

	return out
}

// Cell returns the palace drawn at (row, col) of the Lo Shu layout.
// Cells outside the grid yield an error wrapping luoshu.ErrOutOfBounds.
func (c *Chart) Cell(row, col int) (Palace, error) {
	id, err := luoshu.Standard().At(row, col)
	if err != nil {
		return Palace{}, fmt.Errorf("chart: %w", err)
	}

	return c.Palaces[id-1], nil
}

// Request is one unit of batch work.
type Request struct {
	At        time.Time
	BirthYear string
}
