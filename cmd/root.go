package main

import (
	"fmt"
	"os"

	"github.com/somlint/somlint/pkg/report"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	configFile string
	logLevel   string
	output     string
}

var rootopts = rootOpts{}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "somlint",
		Short: "somlint is a tool which checks reaction networks for stoichiometric inconsistencies",
		Long: `The tool partitions all species of a reaction network into sets of molecules with equal weight, simplifies
the reactions with that partition and reports mass-balance contradictions which remain`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rootopts.configFile, "config", "c", "", "configuration file, by default ./somlint.yaml or the user configuration file")
	rootCmd.PersistentFlags().StringVarP(&rootopts.logLevel, "log-level", "l", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVarP(&rootopts.output, "output", "o", report.FormatText, "output format (text, yaml, json)")

	rootCmd.AddCommand(NewGamesCmd())
	rootCmd.AddCommand(NewPartitionCmd())
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewInitCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
