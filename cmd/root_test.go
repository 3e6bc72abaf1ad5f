package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/mouse-blink/locstat/internal/config"
	"github.com/mouse-blink/locstat/internal/controller"
	"github.com/mouse-blink/locstat/internal/domain"
	domainmocks "github.com/mouse-blink/locstat/internal/domain/mocks"
	m "github.com/mouse-blink/locstat/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd(), newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd
}

func TestRootCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Paths) == 0 &&
			args.Format == controller.FormatText &&
			args.Threads == 1 &&
			!args.Save &&
			args.Reports == m.Path(".locstat-reports")
	})).Return(nil)

	require.NoError(t, newTestRootCmd().Execute())
}

func TestRootCmd_MultiplePaths(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("./cmd") &&
			args.Paths[1] == m.Path("./internal/...") &&
			args.Paths[2] == m.StdinPath
	})).Return(nil)

	require.NoError(t, newTestRootCmd("./cmd", "./internal/...", "-").Execute())
}

func TestRootCmd_Flags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Format == controller.FormatTable &&
			args.Threads == 4 &&
			args.Save &&
			args.Reports == m.Path("out") &&
			len(args.Exclude) == 2 && args.Exclude[0] == "^vendor/" && args.Exclude[1] == `_test\.go$`
	})).Return(nil)

	cmd := newTestRootCmd("-f", "table", "-p", "4", "--save", "-r", "out", "-x", "^vendor/", "-x", `_test\.go$`, ".")
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FormatFromEnvironment(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	originalConfig := appConfig
	t.Cleanup(func() { appConfig = originalConfig })

	t.Setenv("LOCSTAT_FORMAT", "json")
	t.Setenv("LOCSTAT_PARALLEL", "3")
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	appConfig = cfg

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Format == controller.FormatJSON && args.Threads == 3
	})).Return(nil)

	require.NoError(t, newTestRootCmd().Execute())
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	withMockWorkflow(t)

	err := newTestRootCmd("--format", "xml").Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestRootCmd_ConfigError(t *testing.T) {
	withMockWorkflow(t)

	originalErr := configErr
	configErr = errors.New("invalid configuration: boom")
	t.Cleanup(func() { configErr = originalErr })

	err := newTestRootCmd().Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Analyze", mock.Anything, mock.Anything).Return(errors.New("root path error: missing"))

	err := newTestRootCmd("missing").Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "locstat [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{"parallel", "exclude", "save"} {
		assert.NotNilf(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}

	for _, name := range []string{"format", "reports"} {
		assert.NotNilf(t, cmd.PersistentFlags().Lookup(name), "missing persistent --%s flag", name)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, logger, "init() logger is nil")
	assert.NotNil(t, ui, "init() ui is nil")
	assert.NotNil(t, fsAdapter, "init() fsAdapter is nil")
	assert.NotNil(t, reportStore, "init() reportStore is nil")
	assert.NotNil(t, workflow, "init() workflow is nil")

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"inspect", "view"})
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute must return normally when the command succeeds
	Execute()
}

func TestExecute_WithError(t *testing.T) {
	if os.Getenv("LOCSTAT_TEST_EXECUTE_ERROR") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return errors.New("command failed")
			},
		}
		rootCmd.SetArgs([]string{})
		Execute()

		return
	}

	proc := exec.Command(os.Args[0], "-test.run=^TestExecute_WithError$")
	proc.Env = append(os.Environ(), "LOCSTAT_TEST_EXECUTE_ERROR=1")

	err := proc.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
