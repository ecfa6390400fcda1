package cli

import (
	"fmt"
	"os"

	"github.com/scproj-labs/scproj/internal/config"
	"github.com/scproj-labs/scproj/internal/manifest"
	"github.com/scproj-labs/scproj/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initPath     string
	initManifest bool
)

func init() {
	initCmd.Flags().StringVar(&initPath, "path", ".", "Base directory to scaffold into")
	initCmd.Flags().BoolVar(&initManifest, "manifest", false, "Also write a project.yaml manifest")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project directory structure",
	Long: `Create the scRNA-seq project layout under the current directory
(or --path): data/raw, data/processed, notebooks, results/figures,
results/tables, and src, each with a .gitkeep marker, plus the
src/__init__.py helper-module stub and the project README.md.

Directories, markers, and the stub that already exist are left untouched.
README.md is regenerated on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := initPath
		if base == "." {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			base = cwd
		}

		if err := scaffold.Apply(scaffold.DefaultLayout(), base, os.Stdout); err != nil {
			return fmt.Errorf("creating project structure: %w", err)
		}

		if initManifest {
			return writeManifest(base)
		}
		return nil
	},
}

// writeManifest creates project.yaml if absent, stamping the configured
// author and the running tool version.
func writeManifest(base string) error {
	path := manifest.Path(base)
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("\n  [SKIP] %s already exists\n", path)
		return nil
	}

	config.Load()
	m := manifest.Default(config.Get("author"), buildVersion)
	if err := manifest.Save(base, m); err != nil {
		return fmt.Errorf("writing project manifest: %w", err)
	}
	fmt.Printf("\n  [ OK ] Created %s\n", path)
	return nil
}
