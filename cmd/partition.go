package main

import (
	"github.com/somlint/somlint/pkg/report"
	"github.com/spf13/cobra"
)

func NewPartitionCmd() *cobra.Command {

	partitionCmd := &cobra.Command{
		Use:   "partition <model>",
		Short: "prints the sets of molecules with equal weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := analyze(cmd, args[0], report.SectionSOMs)
			return err
		},
	}
	return partitionCmd
}
