package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

var (
	genCount      int
	genDifficulty string
	genSeed       int64
	genSolution   bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more puzzles with a unique solution.

Examples:
  sudoku gen --difficulty hard
  sudoku gen -n 5 --difficulty easy --solution`,
		RunE: runGen,
	}
	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Base seed (0 = current time)")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Also print each solution")
	rootCmd.AddCommand(genCmd)
}

func parseDifficulty(s string) (domain.Difficulty, error) {
	switch s {
	case "easy":
		return domain.Easy, nil
	case "medium":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	case "expert":
		return domain.Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	diff, err := parseDifficulty(genDifficulty)
	if err != nil {
		return err
	}
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	uc := newService()
	for i := 0; i < genCount; i++ {
		p, st, err := uc.Generate(cmd.Context(), seed+int64(i), diff)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Puzzle #%d (%s, %d givens):\n%s\n",
			i+1, diff, p.Givens.Givens(), p.Givens)
		if genSolution {
			sol, _, err := uc.Solver.Solve(cmd.Context(), p.Givens)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solution:\n%s\n", sol)
		}
		log.Debugf("generated %s in %v (%d nodes)", p.ID, st.Duration.Round(time.Millisecond), st.Nodes)
	}
	return nil
}
