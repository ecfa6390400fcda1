package cli

import (
	"fmt"
	"os"

	"github.com/scproj-labs/scproj/internal/manifest"
	"github.com/scproj-labs/scproj/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	doctorPath    string
	doctorFix     bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorPath, "path", ".", "Project directory to check")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair missing directories, markers, and files")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a scaffolded project",
	Long: `Verify that an initialized project still has the expected directories,
.gitkeep markers, helper-module stub, and README. With --fix, missing pieces
are recreated. If the project carries a project.yaml manifest, it is also
validated against the manifest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkManifest != "" {
			return runManifestCheck(checkManifest)
		}

		problems, err := scaffold.Check(os.Stdout, scaffold.DefaultLayout(), doctorPath, doctorFix)
		if err != nil {
			return err
		}

		// Validate the manifest when the project has one.
		manifestPath := manifest.Path(doctorPath)
		if _, statErr := os.Stat(manifestPath); statErr == nil {
			if mErr := runManifestCheck(manifestPath); mErr != nil {
				return mErr
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found; run 'scproj doctor --fix' or 'scproj init' to repair", problems)
		}
		return nil
	},
}

// runManifestCheck validates a manifest against the embedded schema and
// warns when it was written by a newer scproj than the running binary.
func runManifestCheck(path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}

	fmt.Println("Manifest check:")
	if !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Printf("  [FAIL] %s\n", msg)
		}
		return fmt.Errorf("manifest %s failed validation", path)
	}
	fmt.Printf("  [ OK ] %s is valid\n", path)

	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	// Dev builds are not semver; skip the comparison silently.
	newer, err := manifest.WrittenByNewerTool(m.Tool.Version, buildVersion)
	if err == nil && newer {
		fmt.Printf("  [WARN] project was created by %s %s, this binary is %s\n",
			m.Tool.Name, m.Tool.Version, buildVersion)
	}
	return nil
}
