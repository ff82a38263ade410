package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/colorlab-io/swatchview/model"
	"github.com/colorlab-io/swatchview/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

func TestSafeRenderTemplate(t *testing.T) {
	t.Run("successful render", func(t *testing.T) {
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, w io.Writer) error {
				_, err := w.Write([]byte("Hello, World!"))
				if err != nil {
					return fmt.Errorf("failed to write data: %w", err)
				}

				return nil
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)

		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "Hello, World!", recorder.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		expectedErr := errors.New("render error")
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, _ io.Writer) error {
				return expectedErr
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not render template")

		// Nothing should reach the client when rendering fails.
		assert.Empty(t, recorder.Body.String())
	})
}

func TestParseViewState(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("empty query yields the defaults", func(t *testing.T) {
		view, err := handler.ParseViewState(url.Values{})

		require.NoError(t, err)
		assert.Equal(t, model.ViewState{
			Version:      "ColorChecker 2014",
			Space:        "Space 01",
			DisplayRatio: 0.6,
			SwatchRatio:  0.5,
			ShowLabels:   true,
			ScreenWidth:  1920,
			ScreenHeight: 1080,
		}, view)
	})

	t.Run("every parameter can be overridden", func(t *testing.T) {
		q := url.Values{}
		q.Set("version", "ColorChecker 2005")
		q.Set("space", "Space 07")
		q.Set("size", "0.3")
		q.Set("swatch", "1.0")
		q.Set("labels", "off")
		q.Set("sw", "2560")
		q.Set("sh", "1440")

		view, err := handler.ParseViewState(q)

		require.NoError(t, err)
		assert.Equal(t, model.ViewState{
			Version:      "ColorChecker 2005",
			Space:        "Space 07",
			DisplayRatio: 0.3,
			SwatchRatio:  1.0,
			ShowLabels:   false,
			ScreenWidth:  2560,
			ScreenHeight: 1440,
		}, view)
	})

	badQueries := []struct {
		name  string
		key   string
		value string
	}{
		{name: "ratio off the option grid", key: "size", value: "0.35"},
		{name: "ratio above one", key: "size", value: "1.5"},
		{name: "ratio zero", key: "swatch", value: "0"},
		{name: "ratio not a number", key: "swatch", value: "big"},
		{name: "labels not a flag", key: "labels", value: "maybe"},
		{name: "negative screen width", key: "sw", value: "-100"},
		{name: "screen height not a number", key: "sh", value: "tall"},
	}

	for _, tc := range badQueries {
		t.Run(tc.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tc.key, tc.value)

			_, err := handler.ParseViewState(q)

			require.Error(t, err)
		})
	}
}
