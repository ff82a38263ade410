package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/web/routes"
)

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// BuildServer wires the routes around an indexed color table.
func BuildServer(table *chart.Table, screenWidth, screenHeight int, dev bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServer(http.Dir("assets")))))

	handler := routes.NewServerHandler(table, screenWidth, screenHeight)

	mux.Handle("/figure", http.HandlerFunc(handler.FigureHandle))
	mux.Handle("/", http.HandlerFunc(handler.IndexHandle))

	return mux
}

// StartServer runs the viewer until the process is terminated.
func StartServer(port int, table *chart.Table, screenWidth, screenHeight int, dev bool) {
	slog.Info("Running interface", "port", port)

	err := http.ListenAndServe(
		fmt.Sprintf(":%d", port),
		BuildServer(table, screenWidth, screenHeight, dev))
	if err != nil {
		slog.Error("Could not run server", "error", err)
		os.Exit(1)
	}
}
