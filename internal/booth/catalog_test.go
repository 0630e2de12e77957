package booth

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFilterLookup(t *testing.T) {
	c := NewCatalog("")

	none, ok := c.Filter("none")
	require.True(t, ok)
	assert.Empty(t, none.Chain)

	vintage, ok := c.Filter("vintage")
	require.True(t, ok)
	assert.Equal(t, FilterSepia, vintage.Chain[0].Kind)

	_, ok = c.Filter("glitch")
	assert.False(t, ok)
}

func TestCatalogListingsAreSorted(t *testing.T) {
	c := NewCatalog("")

	filters := c.Filters()
	assert.True(t, sort.SliceIsSorted(filters, func(i, j int) bool {
		return filters[i].ID < filters[j].ID
	}))

	decos := c.Decorations()
	require.NotEmpty(t, decos)
	assert.True(t, sort.SliceIsSorted(decos, func(i, j int) bool {
		return decos[i].ID < decos[j].ID
	}))
}

func TestCatalogDecorationPlacementsFitTheCell(t *testing.T) {
	for _, d := range NewCatalog("").Decorations() {
		assert.Positive(t, d.Width, "%s width", d.ID)
		assert.Positive(t, d.Height, "%s height", d.ID)
		assert.GreaterOrEqual(t, d.OffsetX, 0, "%s x", d.ID)
		assert.GreaterOrEqual(t, d.OffsetY, 0, "%s y", d.ID)
		assert.LessOrEqual(t, d.OffsetX+d.Width, CellWidth, "%s overflows horizontally", d.ID)
		assert.LessOrEqual(t, d.OffsetY+d.Height, CellHeight, "%s overflows vertically", d.ID)
	}
}

func TestCatalogAssetBaseJoining(t *testing.T) {
	c := NewCatalog("https://cdn.example.com/booth/")
	d, ok := c.Decoration("hearts")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/booth/decorations/hearts.png", d.AssetURL)

	c = NewCatalog("")
	d, _ = c.Decoration("hearts")
	assert.True(t, strings.HasPrefix(d.AssetURL, defaultAssetBase))
}
