package static

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFiles(t *testing.T) {
	for _, name := range []string{"favicon.svg", "robots.txt"} {
		data, err := files.ReadFile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestHandler(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
	}{
		{"/favicon.svg", "image/svg+xml"},
		{"/robots.txt", "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		w := httptest.NewRecorder()
		Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/og-image.svg", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
