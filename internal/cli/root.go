package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/auditrunner/internal/config"
	"github.com/ppiankov/auditrunner/internal/logging"
	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/runner"
	"github.com/ppiankov/auditrunner/internal/tui"
)

const (
	ExitOK           = 0 // Orchestration completed, whatever the analyzers did
	ExitUsage        = 1 // Wrong command line
	ExitRuntimeError = 2 // Config, I/O or report errors
)

const usageText = `Usage: auditrunner <target_path> [--verbose]
  --verbose: Include detailed results (default is summary mode)
`

// buildVersion is set from main via SetVersion.
var buildVersion = "dev"

// SetVersion records the version string injected at build time.
func SetVersion(v string) {
	if v != "" {
		buildVersion = v
	}
}

// app carries the streams and process boundary the commands use.
type app struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader

	exec       runner.Executor
	loadConfig func() (*config.Config, error)
	isTerminal func(io.Writer) bool
	runTUI     func(*models.CombinedReport) error
}

func defaultApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdin:      os.Stdin,
		exec:       runner.OSExecutor{},
		loadConfig: config.Load,
		isTerminal: logging.IsTerminal,
		runTUI:     tui.Run,
	}
}

// Execute runs the command line and exits with the matching code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := defaultApp().run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes one command line and returns its exit code.
func (a *app) run(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)

	var usageErr *UsageError
	switch {
	case errors.As(err, &usageErr):
		if usageErr.Message != "" {
			fmt.Fprintf(a.stderr, "Error: %s\n", usageErr.Message)
		}
		fmt.Fprint(a.stdout, usageErr.Usage)
	case err != nil:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}

	return HandleError(err)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auditrunner <target_path> [--verbose]",
		Short: "Run the code analyzers against a directory and merge their reports",
		Long: `auditrunner runs the security, performance, code quality and architecture
analyzers one after another against a target directory and prints a single
combined JSON report on stdout. Progress goes to stderr.

A failing analyzer never stops the run; its error is recorded in the report
and the exit code stays 0.

Other commands:
  auditrunner analyzers [--format text|json|yaml]
  auditrunner browse <report.json|->
  auditrunner init [--output auditrunner.yaml] [--force]
  auditrunner version`,
		// The run form takes its arguments positionally: a third argument
		// other than --verbose is ignored, never rejected.
		DisableFlagParsing: true,
		Args:               runArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isHelp(args[0]) {
				fmt.Fprint(a.stdout, usageText)
				return nil
			}
			summaryMode := !(len(args) == 2 && args[1] == verboseFlag)
			return a.runAnalysis(cmd.Context(), args[0], summaryMode)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Message: err.Error(), Usage: c.UsageString()}
	})

	cmd.AddCommand(newAnalyzersCmd(a))
	cmd.AddCommand(newBrowseCmd(a))
	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

func runArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return &UsageError{Usage: usageText}
	}
	return nil
}

// usageArgs turns a cobra positional-args failure into a usage error.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Message: err.Error(), Usage: cmd.UsageString()}
		}
		return nil
	}
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "auditrunner %s\n", buildVersion)
		},
	}
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitRuntimeError
}

// UsageError is a malformed command line. Usage is printed to stdout.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Message == "" {
		return "invalid usage"
	}
	return e.Message
}
