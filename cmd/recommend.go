package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/app"
	"github.com/abhisek/probpick/internal/report"
)

type recommendFlags struct {
	students []string
	format   string
}

func newRecommendCmd() *cobra.Command {
	var flags recommendFlags
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the next problem for each student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, flags)
		},
	}
	cmd.Flags().StringArrayVar(&flags.students, "student", nil, "Student to recommend for (repeatable; default all)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.Flags().Bool("record", false, "Record recommendations in the database")
	return cmd
}

func runRecommend(cmd *cobra.Command, flags recommendFlags) error {
	if err := checkFormat(flags.format); err != nil {
		return err
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	students, err := e.selectStudents(flags.students)
	if err != nil {
		return err
	}

	opts := app.Options{
		Set:            e.catalog.ProblemSet(),
		Threshold:      e.threshold(),
		CatalogVersion: e.catalog.Version(),
		Logger:         e.log,
	}
	if e.cfg.Record {
		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		opts.Recorder = st.RecommendationRepo()
	}

	recs, err := app.New(opts).Recommend(cmd.Context(), students)
	if err != nil {
		return err
	}

	if flags.format == "json" {
		return report.JSON(cmd.OutOrStdout(), recs)
	}
	renderer(cmd).Recommendations(recs)
	return nil
}
