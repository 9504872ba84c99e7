package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/reporter"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <report.json|->",
		Short: "Explore a saved report's top issues",
		Long: `Browse loads a combined report written by a previous run ("-" reads stdin).

On a terminal it opens an interactive table of the top issues with search,
analyzer filter and sorting. Otherwise it prints a plain text summary.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.readReport(args[0])
			if err != nil {
				return err
			}
			if a.isTerminal(a.stdout) {
				return a.runTUI(report)
			}
			return reporter.NewTextReporter(a.stdout).Generate(report)
		},
	}
}

func (a *app) readReport(path string) (*models.CombinedReport, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open report: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	report, err := reporter.LoadReport(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	return report, nil
}
