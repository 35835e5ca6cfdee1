package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/report"
)

func newStudentCmd() *cobra.Command {
	studentCmd := &cobra.Command{
		Use:   "student",
		Short: "Browse the catalog's students",
	}

	var (
		names  []string
		format string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List students and their measured skill levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			students, err := e.selectStudents(names)
			if err != nil {
				return err
			}

			if format == "json" {
				rows := make([]studentRow, len(students))
				for i, st := range students {
					rows[i] = studentRow{Name: st.Name(), Abilities: []abilityRow{}}
					for _, a := range st.Abilities() {
						rows[i].Abilities = append(rows[i].Abilities, abilityRow{Skill: a.Skill.Name(), Level: a.Level.Value()})
					}
				}
				return report.JSON(cmd.OutOrStdout(), rows)
			}
			renderer(cmd).Students(students, e.threshold())
			return nil
		},
	}
	listCmd.Flags().StringArrayVar(&names, "student", nil, "Student to show (repeatable; default all)")
	listCmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	studentCmd.AddCommand(listCmd)
	return studentCmd
}
