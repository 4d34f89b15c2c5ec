package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/spmlink/internal/app"
	"go.trai.ch/spmlink/internal/core/domain"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Add the Swift packages to the project and patch the Podfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptions(cmd)
			report, err := c.app.Apply(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, opts)
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Compute the changes without writing any file")
	return cmd
}

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change without writing any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptions(cmd)
			opts.DryRun = true
			report, err := c.app.Apply(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, opts)
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "Package manifest (default spmlink.yaml when present)")
	cmd.Flags().StringP("project", "p", "", "Xcode project bundle or project.pbxproj (default ios/*.xcodeproj)")
	cmd.Flags().String("podfile", "", "Podfile to patch (default ios/Podfile)")
	cmd.Flags().Bool("skip-project", false, "Leave the Xcode project untouched")
	cmd.Flags().Bool("skip-podfile", false, "Leave the Podfile untouched")
	cmd.Flags().String("id-seed", "", "Derive object identifiers from this seed for reproducible output")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	manifest, _ := cmd.Flags().GetString("manifest")
	project, _ := cmd.Flags().GetString("project")
	podfile, _ := cmd.Flags().GetString("podfile")
	skipProject, _ := cmd.Flags().GetBool("skip-project")
	skipPodfile, _ := cmd.Flags().GetBool("skip-podfile")
	seed, _ := cmd.Flags().GetString("id-seed")
	// plan has no --dry-run flag; GetBool then reports false.
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return app.RunOptions{
		ManifestPath: manifest,
		ProjectPath:  project,
		PodfilePath:  podfile,
		DryRun:       dryRun,
		SkipProject:  skipProject,
		SkipPodfile:  skipPodfile,
		IDSeed:       seed,
	}
}

func printReport(w io.Writer, r *domain.Report, opts app.RunOptions) {
	if !opts.SkipProject {
		_, _ = fmt.Fprintf(w, "references: %d added, %d reused\n", r.ReferencesAdded, r.ReferencesReused)
		_, _ = fmt.Fprintf(w, "products: %d added, %d reused\n", r.ProductsAdded, r.ProductsReused)
		_, _ = fmt.Fprintf(w, "links: %d added, %d present\n", r.LinksAdded, r.LinksPresent)
		for _, warning := range r.Warnings {
			_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
		}
	}
	_, _ = fmt.Fprintf(w, "project: %s\n", projectStatus(r, opts))
	_, _ = fmt.Fprintf(w, "podfile: %s\n", podfileStatus(r, opts))
}

func projectStatus(r *domain.Report, opts app.RunOptions) string {
	switch {
	case opts.SkipProject:
		return "skipped"
	case r.ProjectWritten:
		return "updated"
	case r.Changed():
		return "would change"
	default:
		return "up to date"
	}
}

func podfileStatus(r *domain.Report, opts app.RunOptions) string {
	if r.Podfile == domain.PodfilePatched && opts.DryRun {
		return "would be patched"
	}
	if opts.SkipPodfile {
		return "skipped"
	}
	return r.Podfile.String()
}
