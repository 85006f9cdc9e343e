package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/schemas"
)

func (a *app) chartCmd() *cobra.Command {
	var (
		at        string
		birthYear string
		format    string
		validate  bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Generate the chart for one moment",
		Long: `Generates the chart for --at (default: now) read as wall-clock time in
the configured location.

Example:
  qimen chart --at 2024-01-01T12:00 --birth-year 1990 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			if at != "" {
				var err error
				if t, err = a.parseWallClock(at); err != nil {
					return err
				}
			} else if loc, err := a.cfg.TimeLocation(); err == nil {
				t = t.In(loc)
			}
			if !cmd.Flags().Changed("birth-year") {
				birthYear = a.cfg.BirthYear
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}

			c := chart.Generate(t, birthYear, chart.WithLogger(a.logger))
			a.logger.Info("chart generated",
				zap.Time("at", t),
				zap.String("ju", c.Labels.Ju),
				zap.String("leader", c.Labels.Leader),
			)
			if validate {
				if err := schemas.Validate(c); err != nil {
					return err
				}
			}

			return encode(cmd.OutOrStdout(), format, c)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "wall-clock time, YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&birthYear, "birth-year", "", "birth year (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or grid (default from config)")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the chart against the embedded JSON Schema")

	return cmd
}
