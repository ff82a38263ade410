package components

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/model"
)

// RatioOptions returns the fixed option set for the two size controls:
// 10% through 100% in 10% steps.
func RatioOptions() []Option {
	options := make([]Option, 0, 10)
	for i := 1; i <= 10; i++ {
		options = append(options, Option{
			Value: fmt.Sprintf("%.1f", float64(i)/10),
			Label: fmt.Sprintf("%d%%", i*10),
		})
	}

	return options
}

// RatioValue formats a ratio the way RatioOptions encodes it, so that the
// current selection matches its dropdown entry.
func RatioValue(ratio float64) string {
	return fmt.Sprintf("%.1f", ratio)
}

// FigureQuery encodes a view state as the query string understood by the
// figure route.
func FigureQuery(view model.ViewState) string {
	q := url.Values{}
	q.Set("version", view.Version)
	q.Set("space", view.Space)
	q.Set("size", RatioValue(view.DisplayRatio))
	q.Set("swatch", RatioValue(view.SwatchRatio))

	if view.ShowLabels {
		q.Set("labels", "on")
	} else {
		q.Set("labels", "off")
	}

	q.Set("sw", strconv.Itoa(view.ScreenWidth))
	q.Set("sh", strconv.Itoa(view.ScreenHeight))

	return q.Encode()
}

// CellTransform positions a marker's cell in scene coordinates. Grid rows
// count upward from the bottom while SVG y grows downward, so the row axis
// is flipped here.
func CellTransform(pos model.GridPos) string {
	x := float64(pos.Col) * chart.CellSize
	y := float64(model.GridRows-1-pos.Row) * chart.CellSize

	return fmt.Sprintf("translate(%.2f, %.2f)", x, y)
}

// errWriter batches formatted writes so render code can check one error at
// the end instead of after every tag.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}

	_, e.err = fmt.Fprintf(e.w, format, args...)
}
