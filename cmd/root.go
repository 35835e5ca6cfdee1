package cmd

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns a fresh tree so flag
// state never leaks between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "probpick",
		Short: "Recommend the next exercise for a student",
		Long: "probpick picks, for each student, the problem that exercises the most skills\n" +
			"the student has not yet mastered, given a catalog of skills, problems and\n" +
			"measured skill levels. Without --catalog the bundled demo catalog is used.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, recommendFlags{format: "text"})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML or JSON config file")
	pf.String("catalog", "", "Path to a catalog file (.yaml, .yml or .json); defaults to the bundled demo")
	pf.String("db", "", "Path to SQLite database file (overrides PROBPICK_DB env var)")
	pf.Float64("threshold", 0, "Mastery threshold in [0,1]; defaults to the catalog's, then 0.95")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-format", "", "Log format: text or json")
	pf.Bool("plain", false, "Disable colored output")

	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newProblemCmd())
	rootCmd.AddCommand(newSkillCmd())
	rootCmd.AddCommand(newStudentCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
