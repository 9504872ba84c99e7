package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/auditrunner/internal/registry"
)

// analyzerEntry is one row of the analyzers listing.
type analyzerEntry struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	Resolved string `json:"resolved" yaml:"resolved"`
	Found    bool   `json:"found" yaml:"found"`
}

func newAnalyzersCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyzers",
		Short: "List the analyzers and the executables they resolve to",
		Long: `List every analyzer in run order with its configured path, the absolute
path it resolves to, and whether an executable exists there.

Paths come from the built-in table, overridden by the analyzers section of
auditrunner.yaml, relative to scripts_dir.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "yaml":
			default:
				return &UsageError{
					Message: fmt.Sprintf("unsupported format %q (use text, json or yaml)", format),
					Usage:   cmd.UsageString(),
				}
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			reg, err := cfg.NewRegistry()
			if err != nil {
				return fmt.Errorf("failed to build analyzer registry: %w", err)
			}

			entries, err := listAnalyzers(reg)
			if err != nil {
				return err
			}
			return writeAnalyzers(a.stdout, format, entries)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, or yaml")
	return cmd
}

func listAnalyzers(reg *registry.Registry) ([]analyzerEntry, error) {
	entries := make([]analyzerEntry, 0, len(reg.Specs()))
	for _, spec := range reg.Specs() {
		resolved, err := reg.Resolve(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", spec.Name, err)
		}
		info, err := os.Stat(resolved)
		entries = append(entries, analyzerEntry{
			Name:     string(spec.Name),
			Path:     spec.Path,
			Resolved: resolved,
			Found:    err == nil && !info.IsDir(),
		})
	}
	return entries, nil
}

func writeAnalyzers(w io.Writer, format string, entries []analyzerEntry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()

	default:
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			status := "missing"
			if e.Found {
				status = "ok"
			}
			rows = append(rows, []string{e.Name, e.Path, e.Resolved, status})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ANALYZER", "PATH", "RESOLVED", "STATUS").
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}
}
