package api

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarathoff/polaroid-booth/internal/booth"
	"github.com/sarathoff/polaroid-booth/internal/fonts"
	"github.com/sarathoff/polaroid-booth/internal/prompts"
)

func newTestRouter(t *testing.T, promptClient *prompts.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := booth.NewCatalog("")
	registry := fonts.NewRegistry()
	srv := &Server{
		Compositor: booth.NewCompositor(booth.NewLoader(catalog), catalog, registry),
		Catalog:    catalog,
		Fonts:      registry,
		Prompts:    promptClient,
	}
	r := gin.New()
	srv.RegisterRoutes(r)
	return r
}

func photoPNG(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	img := imaging.New(64, 64, color.NRGBA{R: 180, G: 120, B: 80, A: 255})
	require.NoError(t, imaging.Encode(buf, img, imaging.PNG))
	return buf.Bytes()
}

func composeForm(t *testing.T, fields map[string]string, photos int) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for i := 0; i < photos; i++ {
		fw, err := w.CreateFormFile("photos", "shot.png")
		require.NoError(t, err)
		_, err = fw.Write(photoPNG(t))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestComposeHandlerReturnsPNG(t *testing.T) {
	r := newTestRouter(t, nil)
	body, contentType := composeForm(t, map[string]string{
		"layout":  string(booth.LayoutSingle),
		"caption": "hello",
		"filter":  "noir",
		"font":    "classic",
	}, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/booth/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "photobooth.png")

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, booth.CellWidth, img.Bounds().Dx())
	assert.Equal(t, booth.CellHeight, img.Bounds().Dy())
}

func TestComposeHandlerRequiresPhotos(t *testing.T) {
	r := newTestRouter(t, nil)
	body, contentType := composeForm(t, map[string]string{"layout": "single"}, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/booth/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComposeHandlerRejectsUnknownLayout(t *testing.T) {
	r := newTestRouter(t, nil)
	body, contentType := composeForm(t, map[string]string{"layout": "hexagon"}, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/booth/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler(t *testing.T) {
	r := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/booth/catalog", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Layouts     []booth.LayoutInfo  `json:"layouts"`
		Filters     []booth.FilterStyle `json:"filters"`
		Decorations []booth.Decoration  `json:"decorations"`
		Fonts       []string            `json:"fonts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Layouts, 4)
	assert.NotEmpty(t, body.Filters)
	assert.NotEmpty(t, body.Decorations)
	assert.Contains(t, body.Fonts, "classic")
}

func TestPromptsHandlerWithoutBackend(t *testing.T) {
	r := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/prompts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPromptsHandlerProxiesBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prompts":[{"id":"1","text":"strike a pose"}]}`))
	}))
	defer backend.Close()

	r := newTestRouter(t, prompts.New(backend.URL, ""))
	req := httptest.NewRequest(http.MethodGet, "/api/prompts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "strike a pose")
}

func TestQRHandler(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/qr?text=https://example.com/p/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err := png.Decode(rec.Body)
	assert.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/qr", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
