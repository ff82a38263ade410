package chart

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/colorlab-io/swatchview/model"
)

// Layout of the RGB_8_bit sheet, zero-based. Three chart editions are
// stacked vertically, 29 rows apart; nineteen color spaces sit side by
// side, three columns each, starting at column I.
const (
	versionLabelCol = 0
	spaceLabelRow   = 1
	firstSpaceCol   = 8
	spaceColStride  = 3
	spaceCount      = 19
)

// versionRows pairs each edition's label row with the first row of its
// 24-row data block.
var versionRows = []struct {
	labelRow int
	dataRow  int
}{
	{labelRow: 1, dataRow: 4},
	{labelRow: 30, dataRow: 33},
	{labelRow: 59, dataRow: 62},
}

// Table is the indexed reference data: for every chart version and color
// space, the 24 patch colors. Built once at startup, read-only afterwards.
type Table struct {
	versions []string
	spaces   []string
	colors   map[string]map[string]model.Swatches
}

// NewTable indexes a raw sheet grid. Unlike the vendor sheet itself, the
// mapping is validated: missing labels, short sheets, non-numeric cells and
// out-of-range channel values are reported with their cell coordinates
// instead of producing a silently broken table.
func NewTable(grid [][]string) (*Table, error) {
	t := &Table{colors: make(map[string]map[string]model.Swatches, len(versionRows))}

	for _, vr := range versionRows {
		label, err := cellAt(grid, vr.labelRow, versionLabelCol)
		if err != nil {
			return nil, fmt.Errorf("version label: %w", err)
		}

		t.versions = append(t.versions, label)
	}

	for i := range spaceCount {
		label, err := cellAt(grid, spaceLabelRow, firstSpaceCol+i*spaceColStride)
		if err != nil {
			return nil, fmt.Errorf("color space label: %w", err)
		}

		t.spaces = append(t.spaces, label)
	}

	for i, vr := range versionRows {
		version := t.versions[i]
		t.colors[version] = make(map[string]model.Swatches, spaceCount)

		for j, space := range t.spaces {
			block, err := readBlock(grid, vr.dataRow, firstSpaceCol+j*spaceColStride)
			if err != nil {
				return nil, fmt.Errorf("%s / %s: %w", version, space, err)
			}

			t.colors[version][space] = block
		}
	}

	return t, nil
}

// Versions lists the chart editions in sheet order.
func (t *Table) Versions() []string {
	return slices.Clone(t.versions)
}

// Spaces lists the color spaces in sheet order.
func (t *Table) Spaces() []string {
	return slices.Clone(t.spaces)
}

// Lookup returns the 24 patch colors for a (version, space) pair.
func (t *Table) Lookup(version, space string) (model.Swatches, error) {
	bySpace, ok := t.colors[version]
	if !ok {
		return model.Swatches{}, fmt.Errorf("unknown chart version %q", version)
	}

	swatches, ok := bySpace[space]
	if !ok {
		return model.Swatches{}, fmt.Errorf("unknown color space %q", space)
	}

	return swatches, nil
}

// readBlock reads one 24x3 region into a Swatches set.
func readBlock(grid [][]string, startRow, startCol int) (model.Swatches, error) {
	var swatches model.Swatches

	for i := range model.SwatchCount {
		var channels [3]uint8

		for c := range 3 {
			v, err := channelAt(grid, startRow+i, startCol+c)
			if err != nil {
				return model.Swatches{}, err
			}

			channels[c] = v
		}

		swatches[i] = model.RGB{R: channels[0], G: channels[1], B: channels[2]}
	}

	return swatches, nil
}

// cellAt fetches a cell value, rejecting out-of-range coordinates and empty
// cells so that a truncated or reshuffled sheet fails loudly.
func cellAt(grid [][]string, row, col int) (string, error) {
	if row >= len(grid) || col >= len(grid[row]) {
		return "", fmt.Errorf("sheet ends before cell (%d, %d)", row, col)
	}

	v := grid[row][col]
	if v == "" {
		return "", fmt.Errorf("cell (%d, %d) is empty", row, col)
	}

	return v, nil
}

// channelAt parses one 8-bit channel value. The sheet stores numbers, which
// may surface with a fractional part depending on cell formatting.
func channelAt(grid [][]string, row, col int) (uint8, error) {
	raw, err := cellAt(grid, row, col)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cell (%d, %d): %q is not a number", row, col, raw)
	}

	rounded := math.Round(f)
	if rounded < 0 || rounded > 255 {
		return 0, fmt.Errorf("cell (%d, %d): channel value %v out of range [0, 255]", row, col, f)
	}

	return uint8(rounded), nil
}
