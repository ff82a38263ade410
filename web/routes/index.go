package routes

import (
	"log/slog"
	"net/http"

	"github.com/colorlab-io/swatchview/chart"
	cs "github.com/colorlab-io/swatchview/web/components"
)

// IndexHandle serves the full viewer page for the view state encoded in the
// request query, or the defaults on a bare request.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	slog.Info("Handling index page request")

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

	rc := cs.RenderContext{
		Versions: s.Table.Versions(),
		Spaces:   s.Table.Spaces(),
		View:     view,
		Scene:    scene,
	}

	_ = SafeRenderTemplate(cs.Page(&rc), w)
}
