// Package chart loads the BabelColor ColorChecker reference workbook and
// turns it into an immutable table of 24-patch RGB sets, keyed by chart
// version and color space.
package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// DefaultSheetName is the sheet of ColorChecker_RGB_and_spectra.xlsx that
// carries the 8-bit RGB coordinates.
const DefaultSheetName = "RGB_8_bit"

// ErrDataFileMissing reports that the reference workbook is not where the
// configuration said it would be.
var ErrDataFileMissing = errors.New("reference data file not found")

// LoadSheet reads the named sheet of the workbook at path into a dense
// row/column grid of formatted cell values. The grid is rectangular: every
// row has the same number of columns, absent cells are empty strings.
func LoadSheet(path, sheetName string) ([][]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDataFileMissing, path)
	}

	if err != nil {
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	wb, err := spreadsheet.Read(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("could not read workbook %s: %w", path, err)
	}

	for _, sheet := range wb.Sheets() {
		if sheet.Name() != sheetName {
			continue
		}

		grid := denseGrid(sheet)
		slog.Info("Loaded sheet", "path", path, "sheet", sheetName, "rows", len(grid))

		return grid, nil
	}

	return nil, fmt.Errorf("workbook %s has no sheet named %q", path, sheetName)
}

// denseGrid flattens a sheet into a rectangular [row][col] grid. Sheet rows
// and cells are sparse, so dimensions are measured first.
func denseGrid(sheet spreadsheet.Sheet) [][]string {
	maxRow, maxCol := 0, 0

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) // 1-based
		if rowIdx > maxRow {
			maxRow = rowIdx
		}

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}

			colIdx := int(reference.ColumnToIndex(colName)) + 1
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	grid := make([][]string, maxRow)
	for i := range grid {
		grid[i] = make([]string, maxCol)
	}

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}

			grid[rowIdx][reference.ColumnToIndex(colName)] = cell.GetFormattedValue()
		}
	}

	return grid
}

// LoadTable is the startup path: read the sheet and index it in one go.
func LoadTable(path, sheetName string) (*Table, error) {
	grid, err := LoadSheet(path, sheetName)
	if err != nil {
		return nil, err
	}

	return NewTable(grid)
}
