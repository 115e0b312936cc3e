package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long: `Solve a 9x9 puzzle by chained deduction with guess fallback.

The puzzle is 81 cells of 1-9, with 0, '.' or '_' for empty cells;
whitespace and grid decoration are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	g, err := domain.ParseGrid(string(data))
	if err != nil {
		return err
	}

	eng := newService().NewEngine(g)
	eng.SetStepDelay(viper.GetDuration("step-delay"))
	outcome, st, err := eng.Solve(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if outcome != domain.OutcomeSolved {
		return fmt.Errorf("run ended %s", outcome)
	}
	fmt.Fprint(cmd.OutOrStdout(), eng.Grid().String())
	log.Infof("%d passes, %d guesses, %v", st.Passes, st.Guesses, st.Duration.Round(time.Millisecond))
	return nil
}
