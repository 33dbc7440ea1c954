package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/emmetcpp/internal/fault"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	c := NewGenerateCommand()
	c.SetArgs([]string{"Animal:2int:gs1string", "-o", dir, "-m", "-"})
	require.NoError(t, c.Execute())
	require.FileExists(t, filepath.Join(dir, "Animal.hpp"))
	require.FileExists(t, filepath.Join(dir, "Animal.cpp"))

	c = NewGenerateCommand()
	c.SetArgs([]string{"Animal:2int:gs1string", "-o", dir, "-m", "-"})
	require.Error(t, c.Execute())

	c = NewGenerateCommand()
	c.SetArgs([]string{"Animal:1int", "-o", dir, "--override", "--append"})
	require.Error(t, c.Execute())
}

func TestGenerateCommandConfiguredMode(t *testing.T) {
	dir := t.TempDir()
	viper.Set("generate.mode", "override")
	t.Cleanup(func() { viper.Set("generate.mode", "") })

	for _, desc := range []string{"Animal:1int", "Animal:gs1int"} {
		c := NewGenerateCommand()
		c.SetArgs([]string{desc, "-o", dir})
		require.NoError(t, c.Execute())
	}
	b, err := os.ReadFile(filepath.Join(dir, "Animal.hpp"))
	require.NoError(t, err)
	require.Contains(t, string(b), "attr0_g_s")

	viper.Set("generate.mode", "replace")
	c := NewGenerateCommand()
	c.SetArgs([]string{"Animal:1int", "-o", dir})
	require.Error(t, c.Execute())
}

func TestGenerateCommandGrammarFault(t *testing.T) {
	dir := t.TempDir()

	c := NewGenerateCommand()
	c.SetArgs([]string{"Shape*Base", "-o", dir})
	err := c.Execute()
	require.True(t, fault.IsGrammar(err))
	require.NoFileExists(t, filepath.Join(dir, "Shape.hpp"))
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()

	out := new(bytes.Buffer)
	c := NewDiffCommand()
	c.SetOut(out)
	c.SetArgs([]string{"Box<>:1int", "-o", dir})
	require.NoError(t, c.Execute())
	require.Contains(t, out.String(), filepath.Join(dir, "Box.hpp"))
	require.NoFileExists(t, filepath.Join(dir, "Box.hpp"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "trace", want: levelTrace},
		{in: "TRACE", want: levelTrace},
		{in: "debug", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "debug+1", want: slog.LevelDebug + 1},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
