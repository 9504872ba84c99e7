package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/ppiankov/auditrunner/internal/models"
)

// ErrUnknownAnalyzer is returned when a name is not in the registry.
var ErrUnknownAnalyzer = errors.New("unknown analyzer")

// AnalyzerSpec maps an analyzer name to its executable, relative to the
// scripts base directory. Paths are slash separated.
type AnalyzerSpec struct {
	Name models.AnalyzerName `json:"name" yaml:"name"`
	Path string              `json:"path" yaml:"path"`
}

// Defaults is the fixed analyzer table. Order is the run order.
var Defaults = []AnalyzerSpec{
	{Name: models.AnalyzerSecurity, Path: "security/detect_secrets.py"},
	{Name: models.AnalyzerPerformance, Path: "performance/profile_database.py"},
	{Name: models.AnalyzerCodeQuality, Path: "code_quality/complexity_metrics.py"},
	{Name: models.AnalyzerArchitecture, Path: "architecture/coupling_analysis.py"},
}

// IsKnown reports whether name is one of the default analyzers.
func IsKnown(name string) bool {
	for _, spec := range Defaults {
		if string(spec.Name) == name {
			return true
		}
	}
	return false
}

// Registry resolves analyzer names to absolute executable paths.
// It is immutable after New.
type Registry struct {
	specs   []AnalyzerSpec
	baseDir BaseDirFunc
	goos    string
}

// New builds a registry from Defaults. overrides replaces the relative path
// of known analyzers; an unknown override name is an error.
func New(baseDir BaseDirFunc, overrides map[string]string) (*Registry, error) {
	specs := make([]AnalyzerSpec, len(Defaults))
	copy(specs, Defaults)

	for name, path := range overrides {
		if !IsKnown(name) {
			return nil, fmt.Errorf("override %q: %w", name, ErrUnknownAnalyzer)
		}
		if path == "" {
			continue
		}
		for i := range specs {
			if string(specs[i].Name) == name {
				specs[i].Path = path
			}
		}
	}

	return &Registry{
		specs:   specs,
		baseDir: baseDir,
		goos:    runtime.GOOS,
	}, nil
}

// Names returns analyzer names in run order.
func (r *Registry) Names() []models.AnalyzerName {
	names := make([]models.AnalyzerName, 0, len(r.specs))
	for _, spec := range r.specs {
		names = append(names, spec.Name)
	}
	return names
}

// Specs returns a copy of the analyzer table.
func (r *Registry) Specs() []AnalyzerSpec {
	specs := make([]AnalyzerSpec, len(r.specs))
	copy(specs, r.specs)
	return specs
}

// Lookup returns the spec for name.
func (r *Registry) Lookup(name models.AnalyzerName) (AnalyzerSpec, error) {
	for _, spec := range r.specs {
		if spec.Name == name {
			return spec, nil
		}
	}
	return AnalyzerSpec{}, fmt.Errorf("%q: %w", name, ErrUnknownAnalyzer)
}

// Resolve returns the absolute, platform-correct executable path for name.
func (r *Registry) Resolve(name models.AnalyzerName) (string, error) {
	spec, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	path := filepath.FromSlash(spec.Path)
	if !filepath.IsAbs(path) {
		base, err := r.baseDir()
		if err != nil {
			return "", fmt.Errorf("resolve base directory: %w", err)
		}
		path = filepath.Join(base, path)
	}

	if r.goos == "windows" && filepath.Ext(path) == "" {
		path += ".exe"
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	return abs, nil
}
