package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmfit/errs"
)

// TestRenderer_Kinetics verifies PNG output and pixel dimensions for the
// direct-coordinate chart.
func TestRenderer_Kinetics(t *testing.T) {
	renderer, err := NewRenderer(WithDimensions(640, 480))
	require.NoError(t, err)

	batch := createTestResults(t)

	data, err := renderer.Kinetics(batch.Results())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngMagic))

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 640, img.Bounds().Dx())
	require.Equal(t, 480, img.Bounds().Dy())
}

// TestRenderer_Kinetics_NoResults verifies the empty-input error.
func TestRenderer_Kinetics_NoResults(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	_, err = renderer.Kinetics(nil)
	require.ErrorIs(t, err, errs.ErrNoResults)
}
