package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and inspect catalog files",
	}

	validateCmd := &cobra.Command{
		Use:   "validate PATH",
		Short: "Check that a catalog file is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d skills, %d problems, %d students)\n",
				args[0], c.Version(), len(c.Skills()), c.ProblemSet().Len(), len(c.Students()))
			return nil
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the bundled demo catalog as a starting point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(catalog.DemoSource())
			return err
		},
	}

	catalogCmd.AddCommand(validateCmd)
	catalogCmd.AddCommand(demoCmd)
	return catalogCmd
}
