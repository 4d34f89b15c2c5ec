package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the package products that apply would declare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			coords, err := c.app.Packages(manifest)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "REPOSITORY\tPRODUCT\tREQUIREMENT")
			for _, coord := range coords {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", coord.RepositoryURL, coord.ProductName, coord.Requirement)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Package manifest (default spmlink.yaml when present)")
	return cmd
}
