package routes_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/model"
	"github.com/colorlab-io/swatchview/web/routes"
	"github.com/stretchr/testify/require"
)

var testVersions = []string{"ColorChecker 2014", "ColorChecker 2005", "ColorChecker Original"}

// testGrid mirrors the vendor sheet's fixed geometry with synthetic values.
func testGrid() [][]string {
	labelRows := []int{1, 30, 59}
	dataRows := []int{4, 33, 62}

	grid := make([][]string, 90)
	for i := range grid {
		grid[i] = make([]string, 68)
	}

	for i, r := range labelRows {
		grid[r][0] = testVersions[i]
	}

	for j := range 19 {
		grid[1][8+j*3] = fmt.Sprintf("Space %02d", j+1)
	}

	for i, start := range dataRows {
		for j := range 19 {
			for k := range model.SwatchCount {
				for c := range 3 {
					grid[start+k][8+j*3+c] = strconv.Itoa((i*31 + j*7 + k*11 + c*3) % 256)
				}
			}
		}
	}

	return grid
}

// newTestHandler builds a ServerHandler over the synthetic table with the
// default fallback screen of 1920x1080.
func newTestHandler(t *testing.T) *routes.ServerHandler {
	t.Helper()

	table, err := chart.NewTable(testGrid())
	require.NoError(t, err)

	return routes.NewServerHandler(table, 1920, 1080)
}
