package booth

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/sarathoff/polaroid-booth/internal/util"
)

// Assets holds everything a composition needs, fully decoded before any
// drawing starts.
type Assets struct {
	// Images are the decoded photos, in input order.
	Images []image.Image
	// Decorations maps decoration id to its raster, already resized to the
	// catalog dimensions. Ids that failed to load are absent.
	Decorations map[string]image.Image
}

// SourceProvider resolves photo refs and decoration ids into drawable
// rasters. Photo failures are fatal; decoration failures are dropped.
type SourceProvider interface {
	Load(ctx context.Context, refs []ImageRef, decorationIDs []string) (*Assets, error)
}

// Loader is the default SourceProvider: photos are decoded from their
// uploaded bytes, decoration assets fetched over HTTP. All work for one
// Load call runs concurrently and is joined before returning.
type Loader struct {
	catalog *Catalog
	fetch   func(ctx context.Context, url string) ([]byte, error)
}

func NewLoader(catalog *Catalog) *Loader {
	return &Loader{catalog: catalog, fetch: util.GetBytes}
}

func (l *Loader) Load(ctx context.Context, refs []ImageRef, decorationIDs []string) (*Assets, error) {
	assets := &Assets{
		Images:      make([]image.Image, len(refs)),
		Decorations: make(map[string]image.Image),
	}

	g, ctx := errgroup.WithContext(ctx)

	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			img, err := imaging.Decode(bytes.NewReader(ref.Data))
			if err != nil {
				return fmt.Errorf("decode photo %q: %w", ref.Name, err)
			}
			assets.Images[i] = img
			return nil
		})
	}

	var mu sync.Mutex
	for _, id := range decorationIDs {
		deco, ok := l.catalog.Decoration(id)
		if !ok {
			log.Printf("skipping unknown decoration %q", id)
			continue
		}
		g.Go(func() error {
			// Best effort: a missing sticker should never sink the photo.
			b, err := l.fetch(ctx, deco.AssetURL)
			if err != nil {
				log.Printf("decoration %q fetch failed: %v", deco.ID, err)
				return nil
			}
			img, err := imaging.Decode(bytes.NewReader(b))
			if err != nil {
				log.Printf("decoration %q decode failed: %v", deco.ID, err)
				return nil
			}
			resized := imaging.Resize(img, deco.Width, deco.Height, imaging.Lanczos)
			mu.Lock()
			assets.Decorations[deco.ID] = resized
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
