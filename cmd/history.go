package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/report"
	"github.com/abhisek/probpick/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var (
		studentName string
		limit       int
		format      string
	)
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded recommendations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			events, err := st.RecommendationRepo().List(cmd.Context(), store.QueryOpts{
				Limit:   limit,
				Student: studentName,
			})
			if err != nil {
				return err
			}
			if format == "json" {
				if events == nil {
					events = []store.RecommendationEvent{}
				}
				return report.JSON(cmd.OutOrStdout(), events)
			}
			renderer(cmd).History(events)
			return nil
		},
	}
	historyCmd.Flags().StringVar(&studentName, "student", "", "Only show this student")
	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 = all)")
	historyCmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return historyCmd
}
