package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qimen/schemas"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the chart document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(schemas.ChartSchema())

			return err
		},
	}
}
