// SPDX-License-Identifier: MIT

package chart

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/ju"
	"github.com/katalvlaran/qimen/luoshu"
	"github.com/katalvlaran/qimen/plate"
)

// Generate computes the chart for the wall-clock fields of t and the
// birth year in birthYear. It never fails; see ParseBirthYear for the
// birth-year fallback.
// Complexity: O(9).
func Generate(t time.Time, birthYear string, opts ...Option) *Chart {
	cfg := newConfig(opts...)

	pillars, term := calendar.Resolve(t)
	d := ju.Resolve(term, pillars.Day)
	p := plate.Build(d, pillars.Hour)
	year := ParseBirthYear(birthYear)

	if ce := cfg.log.Check(zap.DebugLevel, "chart resolved"); ce != nil {
		ce.Write(
			zap.Time("at", t),
			zap.Stringer("day", pillars.Day),
			zap.Stringer("hour", pillars.Hour),
			zap.Stringer("term", term),
			zap.String("ju", d.Label()),
			zap.Stringer("leader", p.Anchors.Leader),
			zap.Int("leaderPalace", int(p.Anchors.LeaderPalace)),
			zap.Int("hourPalace", int(p.Anchors.HourPalace)),
			zap.Int("doorPalace", int(p.Anchors.DoorPalace)),
			zap.Bool("stemTrap", p.Trapped),
		)
	}
	if p.Anchors.Fallback {
		cfg.log.Warn("plate lookup fell back to default", zap.Stringer("anchors", p.Anchors))
	}

	c := &Chart{
		At:        t,
		BirthYear: year,
		Pillars:   pillars,
		SolarTerm: term,
		Ju:        d,
		Leader:    p.Anchors.Leader,
	}
	c.Labels = Labels{
		Ju:     d.Label(),
		Term:   c.TermLabel(),
		Leader: p.Anchors.Leader.Label(),
	}

	life := LifeStem(year)
	horse := HorsePalace(pillars.Hour.Branch)
	for i, at := range luoshu.All() {
		c.Palaces[i] = assemble(&p, at, horse, life)
	}

	return c
}

// assemble builds the record of one palace from the distributed plate.
func assemble(p *plate.Plate, at, horse luoshu.Palace, life ganzhi.Stem) Palace {
	info := at.MustInfo()
	out := Palace{
		ID:       at,
		Name:     info.Name,
		Trigram:  info.Trigram,
		Element:  info.Element,
		Position: [2]int{info.Row, info.Col},
		Earth:    p.EarthStack(at),
		Hidden:   p.Hidden.At(at),
		Horse:    at == horse,
		Void:     IsVoid(p.Anchors.Leader.Stem, at),
	}
	if heaven, ok := p.HeavenStack(at); ok {
		out.Heaven = &heaven
		out.Deity = p.Deities.At(at)
		out.Star = p.Stars.At(at)
		out.Door = p.Doors.At(at)
	}
	out.LifeStem = out.Earth.Contains(life) || (out.Heaven != nil && out.Heaven.Contains(life))
	out.Auspice, out.Analysis = Assess(out.Door, out.Void)

	return out
}
