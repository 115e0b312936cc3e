package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maksim-shila/sudoku-solver/internal/generator"
	"github.com/maksim-shila/sudoku-solver/internal/hint"
	"github.com/maksim-shila/sudoku-solver/internal/infrastructure/storage"
	"github.com/maksim-shila/sudoku-solver/internal/report"
	"github.com/maksim-shila/sudoku-solver/internal/solver"
	"github.com/maksim-shila/sudoku-solver/internal/usecase"
	"github.com/maksim-shila/sudoku-solver/internal/validator"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:          "sudoku",
	Short:        "Strategy-driven Sudoku solver",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "info", "debug|info|warn|error")
	pf.Duration("step-delay", 0, "delay inserted after every solver mutation")
	pf.String("persist-path", "./data", "puzzle save directory")
	_ = viper.BindPFlags(pf)
	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.OnInitialize(configureLogging)
}

func configureLogging() {
	lvl, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

// newService wires the full application stack behind the usecase
// facade.
func newService() *usecase.Service {
	s := solver.NewBacktracking()
	return usecase.NewService(
		s,
		generator.NewUnique(s),
		validator.New(),
		hint.NewStrategies(),
		storage.NewFS(viper.GetString("persist-path")),
		report.NewLogger(log),
	)
}
