package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/internal/config"
	"github.com/katalvlaran/qimen/luoshu"
)

// writeBoards draws each chart as its 3×3 Lo Shu board, one line per row,
// with a blank line between charts.
func writeBoards(w io.Writer, v interface{}) error {
	var charts []*chart.Chart
	switch x := v.(type) {
	case *chart.Chart:
		charts = []*chart.Chart{x}
	case []*chart.Chart:
		charts = x
	default:
		return fmt.Errorf("grid output for %T: %w", v, config.ErrUnknownFormat)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range charts {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s  %s  %s  %s\n",
			c.At.Format("2006-01-02 15:04"), c.Labels.Ju, c.Labels.Term, c.Labels.Leader)
		for row := 0; row < luoshu.Size; row++ {
			cells := make([]string, luoshu.Size)
			for col := range cells {
				p, err := c.Cell(row, col)
				if err != nil {
					return err
				}
				cells[col] = cellText(p)
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}

	return tw.Flush()
}

// cellText renders one palace, e.g. "坤2 六合 天辅 开门 天辛 地壬己 暗丁 马".
func cellText(p chart.Palace) string {
	fields := []string{p.Trigram + strconv.Itoa(int(p.ID))}
	if p.Heaven != nil {
		fields = append(fields, p.Deity.String(), p.Star.String(), p.Door.String(), "天"+p.Heaven.String())
	}
	fields = append(fields, "地"+p.Earth.String(), "暗"+p.Hidden.String())
	if p.Void {
		fields = append(fields, "空")
	}
	if p.Horse {
		fields = append(fields, "马")
	}
	if p.LifeStem {
		fields = append(fields, "命")
	}

	return strings.Join(fields, " ")
}
