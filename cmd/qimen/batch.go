package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qimen/chart"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		from, to  string
		step      time.Duration
		workers   int
		birthYear string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate charts for evenly spaced moments in a range",
		Long: `Generates one chart per --step from --from through --to inclusive.
Charts are computed concurrently and written in time order.

Example:
  qimen batch --from 2024-01-01T00:00 --to 2024-01-02T00:00 --step 2h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.parseWallClock(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := a.parseWallClock(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if !cmd.Flags().Changed("birth-year") {
				birthYear = a.cfg.BirthYear
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}

			reqs, err := chart.Series(start, end, step, birthYear)
			if err != nil {
				return err
			}
			charts, err := chart.GenerateAll(cmd.Context(), reqs,
				chart.WithWorkers(workers),
				chart.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("batch generated", zap.Int("charts", len(charts)), zap.Int("workers", workers))

			return encode(cmd.OutOrStdout(), format, charts)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first wall-clock time, YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&to, "to", "", "last wall-clock time, YYYY-MM-DDTHH:MM")
	cmd.Flags().DurationVar(&step, "step", 2*time.Hour, "interval between charts")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent workers (default from config)")
	cmd.Flags().StringVar(&birthYear, "birth-year", "", "birth year (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or grid (default from config)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
