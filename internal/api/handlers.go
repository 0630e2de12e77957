package api

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/sarathoff/polaroid-booth/internal/booth"
	"github.com/sarathoff/polaroid-booth/internal/fonts"
	"github.com/sarathoff/polaroid-booth/internal/prompts"
)

// Server wires the compositing core and the prompt client into gin
// handlers. Prompts may be nil when no backend is configured.
type Server struct {
	Compositor *booth.Compositor
	Catalog    *booth.Catalog
	Fonts      *fonts.Registry
	Prompts    *prompts.Client
}

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// catalog lists everything the frontend pickers need.
func (s *Server) catalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"layouts":     booth.Layouts(),
		"filters":     s.Catalog.Filters(),
		"decorations": s.Catalog.Decorations(),
		"fonts":       s.Fonts.Families(),
	})
}

// compose accepts a multipart form with "photos" files plus layout, filter,
// font, caption and decorations fields, and responds with the finished PNG
// as a download.
func (s *Server) composeHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one photo is required"})
		return
	}

	refs := make([]booth.ImageRef, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		refs = append(refs, booth.ImageRef{Name: fh.Filename, Data: b})
	}

	req := booth.Request{
		Layout:      booth.Layout(c.DefaultPostForm("layout", string(booth.LayoutSingle))),
		Images:      refs,
		Caption:     c.PostForm("caption"),
		FilterID:    c.PostForm("filter"),
		FontFamily:  c.PostForm("font"),
		Decorations: splitIDs(c.PostForm("decorations")),
	}

	out, err := s.Compositor.Compose(c.Request.Context(), req)
	if err != nil {
		var layoutErr *booth.InvalidLayoutError
		if errors.As(err, &layoutErr) || errors.Is(err, booth.ErrNoImages) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println("compose error:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not compose image"})
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="photobooth.png"`)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// prompts proxies the remote writing-prompt backend.
func (s *Server) promptsHandler(c *gin.Context) {
	if s.Prompts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "prompt backend not configured"})
		return
	}
	list, err := s.Prompts.Fetch(c.Request.Context())
	if err != nil {
		log.Println("prompts error:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch prompts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "prompts": list})
}

// qr returns a PNG QR code so the booth can hand the download link to a
// phone.
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 320
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 64 && v <= 1024 {
		size = v
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
