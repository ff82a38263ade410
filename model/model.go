package model

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Chart geometry. Every ColorChecker edition lays out its 24 patches the
// same way: 4 rows of 6, numbered row-major from the top-left.
const (
	SwatchCount = 24
	GridCols    = 6
	GridRows    = 4
)

// RGB is one reference patch color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Label returns the space-separated channel values, e.g. "115 82 68".
func (c RGB) Label() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// Swatches is the full patch set for one (version, color space) pair.
type Swatches [SwatchCount]RGB

// GridPos locates a swatch on the chart grid. Row counts upward from the
// bottom, so the top visual row is row 3.
type GridPos struct {
	Col int
	Row int
}

// PositionFor maps a swatch index to its grid cell. Index 0 lands in the
// top-left cell, index 23 in the bottom-right.
func PositionFor(index int) GridPos {
	return GridPos{
		Col: index % GridCols,
		Row: GridRows - 1 - index/GridCols,
	}
}

// ViewState is the set of rendering parameters a user controls. It lives in
// the request URL, not on the server.
type ViewState struct {
	Version      string
	Space        string
	DisplayRatio float64
	SwatchRatio  float64
	ShowLabels   bool
	ScreenWidth  int
	ScreenHeight int
}
