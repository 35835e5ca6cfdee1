package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/probpick/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "probpick", displayVersion(version))
			fmt.Fprintln(cmd.OutOrStdout(), "catalog format", catalog.SupportedMajor)
		},
	}
}

// displayVersion canonicalizes release versions ("1.2" -> "v1.2.0") and
// leaves anything else untouched.
func displayVersion(v string) string {
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	if semver.IsValid("v" + v) {
		return semver.Canonical("v" + v)
	}
	return v
}
