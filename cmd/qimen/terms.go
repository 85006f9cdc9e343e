package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/ju"
)

func termsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "Print the solar-term table with month branches and patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "START\tTERM\tMONTH\tUPPER\tMIDDLE\tLOWER")
			for _, b := range calendar.Terms() {
				fmt.Fprintf(w, "%02d-%02d\t%s\t%s\t%s\t%s\t%s\n",
					int(b.Month), b.Day, b.Term, calendar.MonthBranch(b.Term),
					ju.Resolve(b.Term, ganzhi.PairAt(0)).Label(),
					ju.Resolve(b.Term, ganzhi.PairAt(5)).Label(),
					ju.Resolve(b.Term, ganzhi.PairAt(10)).Label(),
				)
			}

			return w.Flush()
		},
	}
}
