package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/games"
	"github.com/somlint/somlint/pkg/reducer"
	"github.com/somlint/somlint/pkg/report"
	"github.com/spf13/cobra"
)

var ErrInconsistent = errors.New("model is stoichiometrically inconsistent")

// analyze runs the partitioning and the check on a model file and prints
// the requested report sections.
func analyze(cmd *cobra.Command, modelFile string, sections report.Section) (*games.Report, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	result, err := reducer.Resolve(modelFile, cfg.IgnoreReactions)
	if err != nil {
		return nil, err
	}
	logrus.Info("Checking the weight order.")
	gamesReport := games.Check(result)
	if err := report.Render(cmd.OutOrStdout(), gamesReport, cfg.Output, sections); err != nil {
		return nil, err
	}
	return gamesReport, nil
}
