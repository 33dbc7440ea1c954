package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/emmetcpp/internal/fault"
	"github.com/cmmoran/emmetcpp/pkg/cppgen"
	"github.com/cmmoran/emmetcpp/pkg/manifest"
)

func options(dir string, opts ...cppgen.Option) *cppgen.Options {
	o := cppgen.NewOptions()
	cppgen.WithOutDir(dir)(o)
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateWritesArtifactsAndManifest(t *testing.T) {
	dir := t.TempDir()

	report, err := Generate("Animal:2int:gs1string", options(dir))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "Animal.hpp"), filepath.Join(dir, "Animal.cpp")}, report.Files)
	require.Equal(t, report.Result.Output.Header.Text(), read(t, report.Files[0]))
	require.Equal(t, report.Result.Output.Source.Text(), read(t, report.Files[1]))

	m, err := manifest.Load(report.Manifest)
	require.NoError(t, err)
	e, ok := m.Find("Animal")
	require.True(t, ok)
	require.Equal(t, manifest.Entry{
		Name:        "Animal",
		Description: "Animal:2int:gs1string",
		Header:      "Animal.hpp",
		Source:      "Animal.cpp",
	}, e)
}

func TestGenerateTemplateHasNoSource(t *testing.T) {
	dir := t.TempDir()

	report, err := Generate("Box<>:1int", options(dir, cppgen.WithoutManifest()))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "Box.hpp")}, report.Files)
	require.Empty(t, report.Manifest)
	require.NoFileExists(t, filepath.Join(dir, "Box.cpp"))
	require.NoFileExists(t, filepath.Join(dir, cppgen.DefaultManifest))
}

func TestGenerateModes(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "Animal.hpp")

	_, err := Generate("Animal:1int", options(dir))
	require.NoError(t, err)
	first := read(t, header)

	_, err = Generate("Animal:1int", options(dir))
	require.ErrorIs(t, err, ErrExists)
	require.Equal(t, first, read(t, header))

	_, err = Generate("Animal:1int", options(dir, cppgen.WithAppend()))
	require.NoError(t, err)
	require.Equal(t, first+first, read(t, header))

	report, err := Generate("Animal:2char", options(dir, cppgen.WithOverride()))
	require.NoError(t, err)
	require.Equal(t, report.Result.Output.Header.Text(), read(t, header))

	m, err := manifest.Load(report.Manifest)
	require.NoError(t, err)
	require.Len(t, m.Classes, 1)
	require.Equal(t, "Animal:2char", m.Classes[0].Description)

	_, err = Generate("Animal:1int", options(dir, cppgen.WithOverride(), cppgen.WithAppend()))
	require.ErrorIs(t, err, cppgen.ErrConflictingModes)
}

func TestGenerateCreateChecksEveryTargetFirst(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "Animal.cpp")
	require.NoError(t, os.WriteFile(source, []byte("// keep"), 0o644))

	_, err := Generate("Animal:1int", options(dir))
	require.ErrorIs(t, err, ErrExists)
	require.NoFileExists(t, filepath.Join(dir, "Animal.hpp"))
	require.Equal(t, "// keep", read(t, source))
}

func TestGenerateFaultWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	report, err := Generate("Shape*Base", options(dir))
	require.Nil(t, report)
	require.True(t, fault.IsGrammar(err))
	require.NoDirExists(t, dir)
}
