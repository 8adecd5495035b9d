package summary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

func fixture() (*types.Registry, *types.Totals) {
	registry := types.NewRegistry()
	registry.Add("002", "Osaka")
	registry.Add("001", "Tokyo")
	registry.Add("003", "Fukuoka")

	totals := types.NewTotals(registry)
	totals.Add("001", decimal.NewFromInt(1500))
	totals.Add("002", decimal.NewFromInt(9999999999))
	return registry, totals
}

func lines(ls ...string) string {
	eol := utils.LineEnding()
	return strings.Join(ls, eol) + eol
}

func TestRenderRegistryOrderWithZeroTotals(t *testing.T) {
	registry, totals := fixture()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, registry, totals))

	assert.Equal(t, lines(
		"002,Osaka,9999999999",
		"001,Tokyo,1500",
		"003,Fukuoka,0",
	), buf.String())
}

func TestRenderEmptyRegistry(t *testing.T) {
	registry := types.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, registry, types.NewTotals(registry)))
	assert.Empty(t, buf.String())
}

func TestWriteTextTruncatesExistingFile(t *testing.T) {
	registry, totals := fixture()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644))

	require.NoError(t, WriteText(path, registry, totals))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines("002,Osaka,9999999999", "001,Tokyo,1500", "003,Fukuoka,0"), string(got))
}

func TestWriteTextUnwritablePath(t *testing.T) {
	registry, totals := fixture()
	path := filepath.Join(t.TempDir(), "missing", FileName)

	err := WriteText(path, registry, totals)
	require.Error(t, err)
	assert.Equal(t, validation.UnknownError, validation.KindOf(err))
}
