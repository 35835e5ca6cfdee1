package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/report"
)

func newProblemCmd() *cobra.Command {
	problemCmd := &cobra.Command{
		Use:   "problem",
		Short: "Browse the catalog's problems",
	}

	var (
		studentName string
		format      string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List problems (ranked for a student with --student)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			set := e.catalog.ProblemSet()

			if studentName == "" {
				if format == "json" {
					return report.JSON(cmd.OutOrStdout(), problemRows(set.Problems()))
				}
				renderer(cmd).Problems(set.Problems())
				return nil
			}

			st, err := e.catalog.Student(studentName)
			if err != nil {
				return err
			}
			threshold := e.threshold()
			ranked := set.Rank(st, threshold)
			if format == "json" {
				return report.JSON(cmd.OutOrStdout(), rankedRows(ranked))
			}
			renderer(cmd).Ranking(st.Name(), threshold, ranked)
			return nil
		},
	}
	listCmd.Flags().StringVar(&studentName, "student", "", "Rank problems for this student")
	listCmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	problemCmd.AddCommand(listCmd)
	return problemCmd
}
