package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/auditrunner/internal/models"
)

func fixedBase(dir string) BaseDirFunc {
	return func() (string, error) { return dir, nil }
}

func TestNames_DeclaredOrder(t *testing.T) {
	r, err := New(fixedBase("/opt/analyzers"), nil)
	require.NoError(t, err)

	assert.Equal(t, []models.AnalyzerName{
		models.AnalyzerSecurity,
		models.AnalyzerPerformance,
		models.AnalyzerCodeQuality,
		models.AnalyzerArchitecture,
	}, r.Names())
}

func TestDefaults_ScriptPaths(t *testing.T) {
	r, err := New(fixedBase("/opt/analyzers"), nil)
	require.NoError(t, err)

	paths := make(map[models.AnalyzerName]string)
	for _, spec := range r.Specs() {
		paths[spec.Name] = spec.Path
	}
	assert.Equal(t, map[models.AnalyzerName]string{
		models.AnalyzerSecurity:     "security/detect_secrets.py",
		models.AnalyzerPerformance:  "performance/profile_database.py",
		models.AnalyzerCodeQuality:  "code_quality/complexity_metrics.py",
		models.AnalyzerArchitecture: "architecture/coupling_analysis.py",
	}, paths)
}

func TestResolve_JoinsBaseDir(t *testing.T) {
	base := t.TempDir()
	r, err := New(fixedBase(base), nil)
	require.NoError(t, err)
	r.goos = "linux"

	path, err := r.Resolve(models.AnalyzerCodeQuality)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "code_quality", "complexity_metrics.py"), path)
	assert.True(t, filepath.IsAbs(path))
}

func TestResolve_RelativeBaseBecomesAbsolute(t *testing.T) {
	r, err := New(fixedBase("scripts"), nil)
	require.NoError(t, err)

	path, err := r.Resolve(models.AnalyzerSecurity)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path), "got %s", path)
}

func TestResolve_WindowsAddsExe(t *testing.T) {
	base := t.TempDir()
	r, err := New(fixedBase(base), map[string]string{"security": "bin/secscan"})
	require.NoError(t, err)
	r.goos = "windows"

	sec, err := r.Resolve(models.AnalyzerSecurity)
	require.NoError(t, err)
	assert.Equal(t, ".exe", filepath.Ext(sec))

	perf, err := r.Resolve(models.AnalyzerPerformance)
	require.NoError(t, err)
	assert.Equal(t, ".py", filepath.Ext(perf), "scripts keep their extension")
}

func TestResolve_UnknownName(t *testing.T) {
	r, err := New(fixedBase("/opt"), nil)
	require.NoError(t, err)

	_, err = r.Resolve("linting")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAnalyzer))
}

func TestResolve_BaseDirError(t *testing.T) {
	r, err := New(func() (string, error) { return "", errors.New("no home") }, nil)
	require.NoError(t, err)

	_, err = r.Resolve(models.AnalyzerSecurity)
	assert.ErrorContains(t, err, "no home")
}

func TestNew_Overrides(t *testing.T) {
	base := t.TempDir()
	r, err := New(fixedBase(base), map[string]string{
		"security":     "sec/scan",
		"architecture": "",
	})
	require.NoError(t, err)
	r.goos = "linux"

	sec, err := r.Resolve(models.AnalyzerSecurity)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "sec", "scan"), sec)

	arch, err := r.Lookup(models.AnalyzerArchitecture)
	require.NoError(t, err)
	assert.Equal(t, "architecture/coupling_analysis.py", arch.Path, "empty override keeps default")
}

func TestNew_AbsoluteOverrideIgnoresBase(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "bin", "scanner")
	r, err := New(fixedBase("/somewhere/else"), map[string]string{"security": abs})
	require.NoError(t, err)
	r.goos = "linux"

	path, err := r.Resolve(models.AnalyzerSecurity)
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestNew_UnknownOverride(t *testing.T) {
	_, err := New(fixedBase("/opt"), map[string]string{"linting": "lint/run"})
	require.ErrorIs(t, err, ErrUnknownAnalyzer)
}

func TestNew_DoesNotMutateDefaults(t *testing.T) {
	_, err := New(fixedBase("/opt"), map[string]string{"security": "other/path"})
	require.NoError(t, err)
	assert.Equal(t, "security/detect_secrets.py", Defaults[0].Path)
}

func TestStaticBaseDir_ExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	dir, err := StaticBaseDir("~/analyzers")()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", "analyzers"), dir)
}

func TestBaseDirFor_DefaultsToExecutable(t *testing.T) {
	dir, err := BaseDirFor("")()
	require.NoError(t, err)
	assert.Equal(t, DefaultScriptsDirName, filepath.Base(dir))
}
