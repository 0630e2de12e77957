package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamiliesListing(t *testing.T) {
	r := NewRegistry()
	families := r.Families()
	assert.Contains(t, families, "classic")
	assert.Contains(t, families, "typewriter")
	assert.IsIncreasing(t, families)
}

func TestFaceFallsBackForUnknownFamily(t *testing.T) {
	r := NewRegistry()
	face := r.Face("comic-sans")
	require.NotNil(t, face)
	assert.Positive(t, face.Metrics().Height.Ceil())
}

func TestFaceInstancesAreIndependent(t *testing.T) {
	r := NewRegistry()
	a := r.Face("bold")
	b := r.Face("bold")
	assert.NotSame(t, a, b)
}
