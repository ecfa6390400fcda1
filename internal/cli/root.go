package cli

import (
	"fmt"
	"os"

	"github.com/scproj-labs/scproj/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` materializes the directory layout of the
` + branding.ProjectTitle() + ` scRNA-seq analysis project: raw and processed
data folders, notebooks, result folders, and the src helper module, each kept
under version control with a .gitkeep marker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
