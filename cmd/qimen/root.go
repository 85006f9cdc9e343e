package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qimen/internal/config"
	"github.com/katalvlaran/qimen/internal/logging"
)

// app carries the state shared by all subcommands once PersistentPreRunE
// has loaded it.
type app struct {
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
	// fixed skips logger construction; tests inject one.
	fixed bool
}

// newRootCmd builds the command tree. A nil logger is built from the
// loaded configuration.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger, fixed: logger != nil}

	root := &cobra.Command{
		Use:   "qimen",
		Short: "Hour-based rotating-plate Qimen Dunjia charts",
		Long: `qimen computes 时家转盘奇门 charts: four pillars, solar term, pattern
and nine palaces with earth and heaven stems, stars, doors, deities,
hidden stems and markers.

Configuration is read from --config (YAML) and QIMEN_* environment
variables, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			if a.fixed {
				return nil
			}
			a.logger, err = logging.New(cfg.Log)

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil && !a.fixed {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML configuration file")

	root.AddCommand(
		a.chartCmd(),
		a.batchCmd(),
		termsCmd(),
		schemaCmd(),
	)

	return root
}

// timeLayouts are tried in order for --at, --from and --to.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseWallClock reads s as wall-clock time in the configured location.
func (a *app) parseWallClock(s string) (time.Time, error) {
	loc, err := a.cfg.TimeLocation()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time %q, want YYYY-MM-DDTHH:MM", s)
}

// encode writes v to w in format.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case config.FormatGrid:
		return writeBoards(w, v)
	default:
		return fmt.Errorf("%q: %w", format, config.ErrUnknownFormat)
	}
}
