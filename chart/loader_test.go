package chart_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// writeTestWorkbook saves the synthetic grid as a real xlsx file so the
// loader is exercised end to end.
func writeTestWorkbook(t *testing.T, sheetName string) string {
	t.Helper()

	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	sheet.SetName(sheetName)

	for r, row := range testGrid() {
		for c, value := range row {
			if value == "" {
				continue
			}

			ref := fmt.Sprintf("%s%d", reference.IndexToColumn(uint32(c)), r+1)
			sheet.Cell(ref).SetString(value)
		}
	}

	path := filepath.Join(t.TempDir(), "reference.xlsx")
	require.NoError(t, wb.SaveToFile(path))

	return path
}

func TestLoadSheet(t *testing.T) {
	t.Run("missing file reports the path before any read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.xlsx")

		_, err := chart.LoadSheet(path, chart.DefaultSheetName)

		require.Error(t, err)
		require.ErrorIs(t, err, chart.ErrDataFileMissing)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("unknown sheet name is an error", func(t *testing.T) {
		path := writeTestWorkbook(t, chart.DefaultSheetName)

		_, err := chart.LoadSheet(path, "Spectra")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Spectra"`)
	})

	t.Run("round trip through a real workbook", func(t *testing.T) {
		path := writeTestWorkbook(t, chart.DefaultSheetName)

		grid, err := chart.LoadSheet(path, chart.DefaultSheetName)
		require.NoError(t, err)

		want := testGrid()
		require.GreaterOrEqual(t, len(grid), len(want))

		for r, row := range want {
			for c, value := range row {
				if value == "" {
					continue
				}

				assert.Equal(t, value, grid[r][c], "cell (%d, %d)", r, c)
			}
		}
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("reloading the same file yields an identical table", func(t *testing.T) {
		path := writeTestWorkbook(t, chart.DefaultSheetName)

		first, err := chart.LoadTable(path, chart.DefaultSheetName)
		require.NoError(t, err)
		second, err := chart.LoadTable(path, chart.DefaultSheetName)
		require.NoError(t, err)

		assert.Equal(t, first.Versions(), second.Versions())
		assert.Equal(t, first.Spaces(), second.Spaces())

		for _, version := range first.Versions() {
			for _, space := range first.Spaces() {
				a, err := first.Lookup(version, space)
				require.NoError(t, err)
				b, err := second.Lookup(version, space)
				require.NoError(t, err)
				assert.Equal(t, a, b)
			}
		}
	})

	t.Run("missing file fails before indexing", func(t *testing.T) {
		_, err := chart.LoadTable(filepath.Join(t.TempDir(), "absent.xlsx"), chart.DefaultSheetName)

		require.ErrorIs(t, err, chart.ErrDataFileMissing)
	})
}
