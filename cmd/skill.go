package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/report"
)

func newSkillCmd() *cobra.Command {
	skillCmd := &cobra.Command{
		Use:   "skill",
		Short: "Browse the catalog's skills",
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List declared skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			skills := e.catalog.Skills()
			if format == "json" {
				return report.JSON(cmd.OutOrStdout(), skillNames(skills))
			}
			renderer(cmd).Skills(skills)
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	skillCmd.AddCommand(listCmd)
	return skillCmd
}
