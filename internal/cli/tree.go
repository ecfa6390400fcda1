package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/scproj-labs/scproj/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the planned project layout",
	Long:  `Print the directory layout that "scproj init" would create, without touching the filesystem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := scaffold.DefaultLayout()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, d := range l.Dirs {
			fmt.Fprintf(w, "%s/\t%s\n", d.Path, d.Purpose)
		}
		fmt.Fprintf(w, "%s\tHelper module stub (created if absent)\n", l.StubPath)
		fmt.Fprintf(w, "%s\tProject documentation (regenerated on init)\n", l.ReadmePath)
		return w.Flush()
	},
}
