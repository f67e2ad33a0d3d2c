package main

import (
	"github.com/somlint/somlint/pkg/report"
	"github.com/spf13/cobra"
)

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce <model>",
		Short: "prints the reactions which could be simplified",
		Long: `cancels terms of many-to-many reactions which are known to have equal weight. This is mostly a debug command
which shows what the mass-balance check actually works on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := analyze(cmd, args[0], report.SectionReduced)
			return err
		},
	}
	return reduceCmd
}
