package components

import (
	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/model"
)

// Option is one entry of a dropdown control.
type Option struct {
	Value string
	Label string
}

// RenderContext is everything the page component needs: the control option
// sets, the currently selected view state, and the scene built for it.
type RenderContext struct {
	Versions []string
	Spaces   []string
	View     model.ViewState
	Scene    chart.Scene
}
