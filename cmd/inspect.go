package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/locstat/internal/domain"
	m "github.com/mouse-blink/locstat/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show how every line of a source is classified",
		Long: `Show each line of a single source with its number and kind (code,
comment or empty). Reads standard input when no path is given. On a
terminal, long sources open in a scrollable, filterable view.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.Inspect(cmd.Context(), domain.InspectArgs{Path: path})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
