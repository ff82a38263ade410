package chart

import (
	"math"

	"github.com/colorlab-io/swatchview/model"
)

// CellSize is the side of one grid cell in scene units. Swatch squares are
// sized relative to it and centered within their cell.
const CellSize = 80

// Marker is one colored square of the scene, with its pre-formatted label.
type Marker struct {
	Pos   model.GridPos
	Color model.RGB
	Label string
}

// Scene is a complete description of one rendered chart: marker geometry
// plus canvas dimensions. It carries no widget state and no references back
// into the table, so two scenes built from equal inputs are equal.
type Scene struct {
	Markers    []Marker
	Width      int
	Height     int
	SwatchSide float64
	ShowLabels bool
}

// BuildScene produces the scene for one view state. It is a pure function
// of the view and the immutable table; absent (version, space) pairs
// surface as lookup errors.
func BuildScene(table *Table, view model.ViewState) (Scene, error) {
	swatches, err := table.Lookup(view.Version, view.Space)
	if err != nil {
		return Scene{}, err
	}

	markers := make([]Marker, 0, model.SwatchCount)
	for i, c := range swatches {
		markers = append(markers, Marker{
			Pos:   model.PositionFor(i),
			Color: c,
			Label: c.Label(),
		})
	}

	return Scene{
		Markers:    markers,
		Width:      int(math.Round(float64(view.ScreenWidth) * view.DisplayRatio)),
		Height:     int(math.Round(float64(view.ScreenHeight) * view.DisplayRatio)),
		SwatchSide: CellSize * view.SwatchRatio,
		ShowLabels: view.ShowLabels,
	}, nil
}
