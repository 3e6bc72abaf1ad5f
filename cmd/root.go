// Package cmd provides the root command and CLI setup for locstat.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mouse-blink/locstat/internal/adapter"
	"github.com/mouse-blink/locstat/internal/config"
	"github.com/mouse-blink/locstat/internal/controller"
	"github.com/mouse-blink/locstat/internal/domain"
	"github.com/mouse-blink/locstat/internal/log"
	m "github.com/mouse-blink/locstat/internal/model"
	"github.com/spf13/cobra"
)

const rootLongDescription = `Locstat reports how many lines of a source text are code, comments or
blank, and how many characters belong to code lines.

A line is a comment when, after trimming whitespace, it starts with "//".
Block comments are not recognized.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories
  - -              read standard input (the default when no path is given)`

var appConfig config.AppConfig
var configErr error
var logger *log.Logger
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	appConfig, configErr = config.LoadConfig("")
	if configErr != nil {
		appConfig = config.NewAppConfig()
	}

	logger = log.NewLogger(os.Stderr, appConfig)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		domain.WithLogger(logger),
		domain.WithCacheSize(appConfig.CacheSize()),
	)
}

var formatFlag string
var parallelFlag int
var excludeFlags []string
var saveFlag bool
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "locstat [paths...]",
		Short:        "Count code, comment and empty lines",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return configErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat()
			if err != nil {
				return err
			}

			parallel := parallelFlag
			if parallel <= 0 {
				parallel = appConfig.Parallel()
			}

			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
				Format:  format,
				Threads: parallel,
				Save:    saveFlag,
				Reports: reportsDir(),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "report format: text, table or json (default from LOCSTAT_FORMAT or text)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory for saved reports (default from LOCSTAT_REPORTS_DIR or .locstat-reports)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of sources classified concurrently (default from LOCSTAT_PARALLEL or 1)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "save the report for later use with the view command")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func resolveFormat() (controller.Format, error) {
	value := formatFlag
	if value == "" {
		value = appConfig.Format()
	}

	format, err := controller.ParseFormat(value)
	if err != nil {
		return "", fmt.Errorf("invalid --format: %w", err)
	}

	return format, nil
}

func reportsDir() m.Path {
	if reportsOutputDirFlag != "" {
		return m.Path(reportsOutputDirFlag)
	}

	return m.Path(appConfig.ReportsDir())
}
