package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/model"
)

// Label styling matches the reference chart renderings: small light text
// centered on each swatch.
const (
	labelColor    = "#ffffff"
	labelFontSize = 15
)

// Figure renders a scene as an SVG: 24 squares on a black canvas, sized to
// the scene's pixel dimensions, with the grid bounding box as the fixed
// view box so the aspect ratio stays equal regardless of canvas shape.
func Figure(scene *chart.Scene) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		viewBoxW := model.GridCols * chart.CellSize
		viewBoxH := model.GridRows * chart.CellSize

		ew.printf(`<svg id="figure" xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid meet" style="background-color:#000;display:block">`,
			scene.Width, scene.Height, viewBoxW, viewBoxH)
		ew.printf(`<rect width="%d" height="%d" fill="#000"/>`, viewBoxW, viewBoxH)

		// Squares are centered in their cells.
		inset := (chart.CellSize - scene.SwatchSide) / 2

		for _, m := range scene.Markers {
			ew.printf(`<g transform="%s">`, CellTransform(m.Pos))
			ew.printf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
				inset, inset, scene.SwatchSide, scene.SwatchSide, m.Color.Hex())

			if scene.ShowLabels {
				ew.printf(`<text x="%d" y="%d" fill="%s" font-size="%d" font-family="Arial" text-anchor="middle" dominant-baseline="central">%s</text>`,
					chart.CellSize/2, chart.CellSize/2, labelColor, labelFontSize, templ.EscapeString(m.Label))
			}

			ew.printf(`</g>`)
		}

		ew.printf(`</svg>`)

		return ew.err
	})
}
