package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ppiankov/auditrunner/internal/aggregator"
	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/registry"
)

// DefaultTimeout is the per-analyzer execution timeout.
const DefaultTimeout = 5 * time.Minute

// SummaryFlag asks an analyzer for counts only.
const SummaryFlag = "--summary"

// Config tunes how analyzers are invoked.
type Config struct {
	// Timeout bounds a single analyzer call. Zero means DefaultTimeout.
	Timeout time.Duration
	// Interpreter, when set, runs each analyzer script as `Interpreter <script> args...`.
	Interpreter string
}

// Runner executes the registered analyzers and assembles the combined report.
type Runner struct {
	exec        Executor
	registry    *registry.Registry
	builder     *aggregator.Builder
	timeout     time.Duration
	interpreter string

	now   func() time.Time
	newID func() string
}

// New creates a Runner over the given executor and registry.
func New(exec Executor, reg *registry.Registry, cfg Config) *Runner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Runner{
		exec:        exec,
		registry:    reg,
		builder:     aggregator.NewBuilder(),
		timeout:     timeout,
		interpreter: cfg.Interpreter,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// RunAll runs every registered analyzer, strictly one after another, in
// registry order. A failing analyzer never stops the ones after it.
func (r *Runner) RunAll(ctx context.Context, targetPath string, summaryMode bool) *models.CombinedReport {
	logger := zerolog.Ctx(ctx)
	names := r.registry.Names()

	logger.Info().
		Str("target", targetPath).
		Bool("summary_mode", summaryMode).
		Msgf("Starting analysis with %d analyzers", len(names))

	var results models.ResultSet
	start := time.Now()
	for _, name := range names {
		results.Set(name, r.RunOne(ctx, name, targetPath, summaryMode))
	}
	total := time.Since(start)

	report := r.builder.Build(results, models.Metadata{
		RunID:         r.newID(),
		TargetPath:    targetPath,
		Timestamp:     r.now().Format(models.TimestampLayout),
		TotalDuration: models.RoundSeconds(total),
		SummaryMode:   summaryMode,
	})

	logger.Info().
		Bool("overall_success", report.Metadata.OverallSuccess).
		Int("total_findings", report.ExecutiveSummary.TotalFindings).
		Msgf("Analysis complete in %.2fs", total.Seconds())

	return report
}

// RunOne invokes a single analyzer. Every failure, including a lookup
// error, a timeout or a panicking executor, comes back as an error result.
func (r *Runner) RunOne(ctx context.Context, name models.AnalyzerName, targetPath string, summaryMode bool) models.AnalyzerResult {
	logger := zerolog.Ctx(ctx).With().Str("analyzer", string(name)).Logger()

	path, err := r.registry.Resolve(name)
	if err != nil {
		logger.Error().Err(err).Msg("✗ analyzer lookup failed")
		return models.NewErrorResult(fmt.Sprintf("Failed to resolve analyzer: %v", err), "")
	}

	program, args := r.command(path, targetPath, summaryMode)
	logger.Info().Msgf("Running %s analysis...", name)
	logger.Debug().Str("program", program).Strs("args", args).Msg("exec")

	toolCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	res, err := r.execute(toolCtx, program, args)
	duration := time.Since(start)
	stderr := string(res.Stderr)

	switch {
	case toolCtx.Err() != nil:
		msg := fmt.Sprintf("Script cancelled: %v", toolCtx.Err())
		if errors.Is(toolCtx.Err(), context.DeadlineExceeded) {
			msg = fmt.Sprintf("Script timed out after %s", r.timeout)
		}
		logger.Error().Dur("elapsed", duration).Msgf("✗ %s", msg)
		return models.NewErrorResult(msg, stderr)

	case err != nil:
		logger.Error().Err(err).Dur("elapsed", duration).Msg("✗ analyzer could not be run")
		return models.NewErrorResult(fmt.Sprintf("Failed to run script: %v", err), stderr)

	case res.ExitCode != 0:
		logger.Error().
			Int("exit_code", res.ExitCode).
			Msgf("✗ %s failed after %.2fs", name, duration.Seconds())
		return models.NewErrorResult(fmt.Sprintf("Script failed (code %d)", res.ExitCode), stderr)
	}

	payload, err := models.DecodePayload(res.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("✗ analyzer output is not valid JSON")
		return models.NewErrorResult(fmt.Sprintf("JSON decode error: %v", err), stderr)
	}

	logger.Info().Msgf("✓ %s completed in %.2fs", name, duration.Seconds())
	return models.NewSuccessResult(payload, duration)
}

// command builds the program and argument list for one analyzer call.
func (r *Runner) command(path, targetPath string, summaryMode bool) (string, []string) {
	args := []string{targetPath}
	if summaryMode {
		args = append(args, SummaryFlag)
	}

	fields := strings.Fields(r.interpreter)
	if len(fields) == 0 {
		return path, args
	}

	prefix := append(fields[1:], path)
	return fields[0], append(prefix, args...)
}

// execute shields the orchestrator from a panicking executor.
func (r *Runner) execute(ctx context.Context, program string, args []string) (res ExecResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = ExecResult{}
			err = fmt.Errorf("executor panic: %v", p)
		}
	}()
	return r.exec.Execute(ctx, program, args...)
}
