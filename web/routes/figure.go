package routes

import (
	"log/slog"
	"net/http"

	"github.com/colorlab-io/swatchview/chart"
	cs "github.com/colorlab-io/swatchview/web/components"
)

// FigureHandle serves just the SVG fragment for one view state. The page
// script calls this on every control change and swaps the result in, so a
// change re-renders the whole scene and nothing else.
func (s *ServerHandler) FigureHandle(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Handling figure request", "query", r.URL.RawQuery)

	view, err := s.ParseViewState(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	scene, err := chart.BuildScene(s.Table, view)
	if err != nil {
		slog.Error("Failed to build scene", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	_ = SafeRenderTemplate(cs.Figure(&scene), w)
}
