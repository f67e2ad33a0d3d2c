package main

import (
	"github.com/somlint/somlint/pkg/report"
	"github.com/spf13/cobra"
)

func NewGamesCmd() *cobra.Command {

	gamesCmd := &cobra.Command{
		Use:   "games <model>",
		Short: "checks a reaction network for mass-balance inconsistencies",
		Long: `partitions all species into sets of molecules with equal weight, reduces reactions with them and reports
every contradiction to positive species weights. Exits with a non-zero status if the model is inconsistent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gamesReport, err := analyze(cmd, args[0], report.SectionAll)
			if err != nil {
				return err
			}
			if !gamesReport.Consistent {
				return ErrInconsistent
			}
			return nil
		},
	}
	return gamesCmd
}
