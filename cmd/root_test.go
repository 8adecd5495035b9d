package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/branchlist"
	"github.com/ginjaninja78/calculate-sales/internal/summary"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func inputDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRootWritesSummary(t *testing.T) {
	dir := inputDir(t, map[string]string{
		branchlist.FileName: "001,Tokyo\n002,Osaka\n",
		"00000001.rcd":      "001\n100\n",
		"00000002.rcd":      "001\n20\n",
	})

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, summary.FileName))
	require.NoError(t, err)
	eol := utils.LineEnding()
	assert.Equal(t, "001,Tokyo,120"+eol+"002,Osaka,0"+eol, string(data))
}

func TestRootPrintsSingleDiagnosticLine(t *testing.T) {
	dir := inputDir(t, map[string]string{
		branchlist.FileName: "001,Tokyo\n",
		"00000001.rcd":      "001\n100\n",
		"00000003.rcd":      "001\n100\n",
	})

	out, err := execute(t, dir)
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, "Sales file names are not sequential\n", out)
	assert.False(t, utils.FileExists(filepath.Join(dir, summary.FileName)))
}

func TestRootWrongArgumentCount(t *testing.T) {
	out, err := execute(t)
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, "An unexpected error occurred\n", out)

	out, err = execute(t, "a", "b")
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, "An unexpected error occurred\n", out)
}

func TestRootJapaneseMessages(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "calculate-sales.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("locale: ja\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, t.TempDir())
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, "支店定義ファイルが存在しません\n", out)
}

func TestRootMissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, errAborted)
}

func TestRootDryRunAndValidate(t *testing.T) {
	dir := inputDir(t, map[string]string{
		branchlist.FileName: "001,Tokyo\n",
		"00000001.rcd":      "001\n100\n",
	})

	out, err := execute(t, "--dry-run", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	assert.False(t, utils.FileExists(filepath.Join(dir, summary.FileName)))
}

func TestValidateReportsFailure(t *testing.T) {
	dir := inputDir(t, map[string]string{
		branchlist.FileName: "001,Tokyo\n",
		"00000001.rcd":      "999\n100\n",
	})

	out, err := execute(t, "validate", dir)
	assert.ErrorIs(t, err, errAborted)
	assert.Equal(t, "00000001.rcd has an invalid branch code\n", out)
}

func TestRootXLSXFlag(t *testing.T) {
	dir := inputDir(t, map[string]string{
		branchlist.FileName: "001,Tokyo\n",
	})

	_, err := execute(t, "--xlsx", "summary.xlsx", dir)
	require.NoError(t, err)
	assert.True(t, utils.FileExists(filepath.Join(dir, "summary.xlsx")))
}

func TestRootDirectoryNamedLikeSubcommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "validate")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, branchlist.FileName), []byte("001,Tokyo\n"), 0o644))

	_, err := execute(t, dir)
	require.NoError(t, err)
	assert.True(t, utils.FileExists(filepath.Join(dir, summary.FileName)))

	root := newRootCmd()
	assert.Contains(t, root.Long, "./validate")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)
}
