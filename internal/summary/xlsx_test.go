package summary

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

func TestWriteXLSX(t *testing.T) {
	registry, totals := fixture()
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	require.NoError(t, WriteXLSX(path, "", registry, totals))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheet}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Code", "Name", "Total"},
		{"002", "Osaka", "9999999999"},
		{"001", "Tokyo", "1500"},
		{"003", "Fukuoka", "0"},
	}, rows)
}

func TestWriteXLSXCustomSheet(t *testing.T) {
	registry, totals := fixture()
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	require.NoError(t, WriteXLSX(path, "Branches", registry, totals))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Branches"}, f.GetSheetList())

	value, err := f.GetCellValue("Branches", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", value)
}

func TestWriteXLSXUnwritablePath(t *testing.T) {
	registry, totals := fixture()
	path := filepath.Join(t.TempDir(), "missing", "summary.xlsx")

	err := WriteXLSX(path, "", registry, totals)
	require.Error(t, err)
	assert.Equal(t, validation.UnknownError, validation.KindOf(err))
}
