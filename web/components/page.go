package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageStyle = `
body {
	background-color: black;
	font-family: Arial, sans-serif;
	color: white;
	margin: 0;
	padding: 10px;
}

.control {
	display: inline-block;
	padding: 10px;
	vertical-align: middle;
}

.control select {
	display: block;
	margin-top: 4px;
	min-width: 160px;
	font-family: Arial, sans-serif;
}

.control label {
	color: white;
}
`

// pageScript re-fetches the figure fragment whenever a control changes and
// swaps it into the page, carrying the real screen dimensions along so the
// canvas can be sized against them.
const pageScript = `
function figureQuery() {
	const params = new URLSearchParams(new FormData(document.getElementById('controls')));
	params.set('sw', window.screen.width);
	params.set('sh', window.screen.height);
	return params.toString();
}

async function refreshFigure() {
	const resp = await fetch('/figure?' + figureQuery());
	if (resp.ok) {
		document.getElementById('figure-box').innerHTML = await resp.text();
	}
}

document.getElementById('controls').addEventListener('change', refreshFigure);
window.addEventListener('load', refreshFigure);
`

// Page renders the whole viewer: the five controls plus the figure built
// for the current view state.
func Page(rc *RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>ColorChecker</title><style>%s</style></head><body>`, pageStyle)
		ew.printf(`<form id="controls">`)

		selectControl(ew, "ColorChecker Version:", "version", optionsFrom(rc.Versions), rc.View.Version)
		selectControl(ew, "Color Space:", "space", optionsFrom(rc.Spaces), rc.View.Space)
		selectControl(ew, "Screen Size Ratio:", "size", RatioOptions(), RatioValue(rc.View.DisplayRatio))
		selectControl(ew, "Color Square Ratio:", "swatch", RatioOptions(), RatioValue(rc.View.SwatchRatio))
		labelsControl(ew, rc.View.ShowLabels)

		ew.printf(`</form><div id="figure-box">`)

		if ew.err != nil {
			return ew.err
		}

		if err := Figure(&rc.Scene).Render(ctx, w); err != nil {
			return err
		}

		ew.printf(`</div><script>%s</script></body></html>`, pageScript)

		return ew.err
	})
}

func optionsFrom(labels []string) []Option {
	options := make([]Option, 0, len(labels))
	for _, l := range labels {
		options = append(options, Option{Value: l, Label: l})
	}

	return options
}

func selectControl(ew *errWriter, label, name string, options []Option, selected string) {
	ew.printf(`<div class="control"><label for="%s">%s</label><select id="%s" name="%s">`,
		name, templ.EscapeString(label), name, name)

	for _, o := range options {
		marker := ""
		if o.Value == selected {
			marker = " selected"
		}

		ew.printf(`<option value="%s"%s>%s</option>`,
			templ.EscapeString(o.Value), marker, templ.EscapeString(o.Label))
	}

	ew.printf(`</select></div>`)
}

func labelsControl(ew *errWriter, showLabels bool) {
	onChecked, offChecked := "", ""
	if showLabels {
		onChecked = " checked"
	} else {
		offChecked = " checked"
	}

	ew.printf(`<div class="control"><label>Show RGB Labels:</label>`)
	ew.printf(`<label><input type="radio" name="labels" value="on"%s> Show RGB value</label>`, onChecked)
	ew.printf(`<label><input type="radio" name="labels" value="off"%s> Hide RGB value</label>`, offChecked)
	ew.printf(`</div>`)
}
