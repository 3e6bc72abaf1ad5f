package cmd

import (
	"github.com/mouse-blink/locstat/internal/domain"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved report",
		Long:  "View the report saved by a previous run with --save from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := resolveFormat()
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: reportsDir(), Format: format})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
