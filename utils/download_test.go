package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestUtils_ShouldDownloadFont(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(goregular.TTF)
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL+"/Go-Regular.ttf", "font")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	f.Close()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, len(goregular.TTF), len(data))
}

func TestUtils_ShouldRejectWrongContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not a font</body></html>"))
	}))
	defer srv.Close()

	_, err := DownloadFile(srv.URL, "font")
	assert.Error(t, err)
}

func TestUtils_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := DownloadFile(srv.URL, "font")
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/assetgen/"))
	assert.False(t, IsValidUrl("/System/Library/Fonts/Arial.ttf"))
	assert.False(t, IsValidUrl("fonts/Arial.ttf"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))

	ctype, err := DetectContentType(path)
	require.NoError(t, err)

	if !strings.Contains(ctype, "font") {
		t.Errorf("Content type expected to be of type font, got: %v", ctype)
	}
}
