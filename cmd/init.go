package main

import (
	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/config"
	"github.com/spf13/cobra"
)

type initOpts struct {
	out    string
	global bool
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a somlint.yaml configuration file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := initopts.out
			if initopts.global {
				var err error
				out, err = config.UserConfigPath()
				if err != nil {
					return err
				}
			}
			if err := config.Init(out); err != nil {
				return err
			}
			logrus.Infof("wrote %s", out)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "file", "f", config.LocalFile, "where to write the configuration")
	initCmd.Flags().BoolVarP(&initopts.global, "global", "g", false, "write the per-user configuration file instead")
	return initCmd
}
