package versioncommand

import (
	"fmt"

	"github.com/redjax/hexify/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetPackageInfo()
			if !verbose {
				fmt.Fprintln(cmd.OutOrStdout(), info)
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
				info.PackageName,
				info.RepoUser,
				info.RepoName,
				info.RepoUrl,
				info.PackageVersion,
				info.PackageCommit,
				info.PackageReleaseDate,
			)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full package info")

	return cmd
}
