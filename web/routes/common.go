package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/colorlab-io/swatchview/chart"
	"github.com/colorlab-io/swatchview/model"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Table    *chart.Table
	Defaults model.ViewState
}

// NewServerHandler wires a handler around an indexed table. Defaults mirror
// the original viewer: first version, first space, 60% canvas, 50% squares,
// labels shown.
func NewServerHandler(table *chart.Table, screenWidth, screenHeight int) *ServerHandler {
	defaults := model.ViewState{
		DisplayRatio: 0.6,
		SwatchRatio:  0.5,
		ShowLabels:   true,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}

	if versions := table.Versions(); len(versions) > 0 {
		defaults.Version = versions[0]
	}

	if spaces := table.Spaces(); len(spaces) > 0 {
		defaults.Space = spaces[0]
	}

	return &ServerHandler{Table: table, Defaults: defaults}
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// ParseViewState decodes a view state from request query parameters,
// falling back to the handler defaults for anything absent. Values outside
// the fixed control option sets are rejected rather than clamped.
func (s *ServerHandler) ParseViewState(q url.Values) (model.ViewState, error) {
	view := s.Defaults

	if v := q.Get("version"); v != "" {
		view.Version = v
	}

	if v := q.Get("space"); v != "" {
		view.Space = v
	}

	var err error

	if view.DisplayRatio, err = parseRatio(q, "size", view.DisplayRatio); err != nil {
		return model.ViewState{}, err
	}

	if view.SwatchRatio, err = parseRatio(q, "swatch", view.SwatchRatio); err != nil {
		return model.ViewState{}, err
	}

	switch q.Get("labels") {
	case "":
	case "on":
		view.ShowLabels = true
	case "off":
		view.ShowLabels = false
	default:
		return model.ViewState{}, fmt.Errorf("labels must be %q or %q, got %q", "on", "off", q.Get("labels"))
	}

	if view.ScreenWidth, err = parseDimension(q, "sw", view.ScreenWidth); err != nil {
		return model.ViewState{}, err
	}

	if view.ScreenHeight, err = parseDimension(q, "sh", view.ScreenHeight); err != nil {
		return model.ViewState{}, err
	}

	return view, nil
}

// parseRatio accepts only the control option set: 0.1 through 1.0 in 0.1
// steps.
func parseRatio(q url.Values, key string, fallback float64) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, raw)
	}

	steps := f * 10
	if math.Abs(steps-math.Round(steps)) > 1e-9 || steps < 1 || steps > 10 {
		return 0, fmt.Errorf("%s: %v is not one of the 10%%..100%% steps", key, f)
	}

	return f, nil
}

func parseDimension(q url.Values, key string, fallback int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive integer", key, raw)
	}

	return n, nil
}
