package cli

import (
	"context"
	"fmt"

	"github.com/ppiankov/auditrunner/internal/logging"
	"github.com/ppiankov/auditrunner/internal/reporter"
	"github.com/ppiankov/auditrunner/internal/runner"
)

const verboseFlag = "--verbose"

// runAnalysis is the run form: every analyzer, one combined JSON report.
func (a *app) runAnalysis(ctx context.Context, targetPath string, summaryMode bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := cfg.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to build analyzer registry: %w", err)
	}

	logger := logging.New(a.stderr, cfg.Debug)
	ctx = logger.WithContext(ctx)

	r := runner.New(a.exec, reg, runner.Config{
		Timeout:     cfg.Timeout,
		Interpreter: cfg.Interpreter,
	})
	report := r.RunAll(ctx, targetPath, summaryMode)

	if err := reporter.NewJSONReporter(a.stdout, true).Generate(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
