package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	s, err := Lookup(" Letter ")
	require.NoError(t, err)
	w, h := s.Dimensions(Portrait)
	assert.Equal(t, 21.59, w)
	assert.Equal(t, 27.94, h)
	w, h = s.Dimensions(Landscape)
	assert.Equal(t, 27.94, w)
	assert.Equal(t, 21.59, h)

	_, err = Lookup("napkin")
	assert.ErrorContains(t, err, "napkin")
}

func TestOrientation(t *testing.T) {
	o, err := ParseOrientation("L")
	require.NoError(t, err)
	assert.Equal(t, Landscape, o)

	var got Orientation
	require.NoError(t, got.UnmarshalText([]byte("portrait")))
	assert.Equal(t, Portrait, got)
	assert.Error(t, got.UnmarshalText([]byte("sideways")))

	b, _ := Landscape.MarshalText()
	assert.Equal(t, "landscape", string(b))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "a4")
	assert.IsIncreasing(t, names)
}
