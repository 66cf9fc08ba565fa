package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, ErrImageNotLoaded)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrImageNotLoaded)
}

func TestLoadReadsBGR(t *testing.T) {
	mat, err := Load(writeTestPNG(t, 8, 6))
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 8, mat.Cols())
	assert.Equal(t, 6, mat.Rows())
	assert.Equal(t, 3, mat.Channels())

	m := mat.GetMat()
	// red in RGB is the last channel in BGR
	assert.EqualValues(t, 255, m.GetUCharAt3(0, 0, 2))
	assert.EqualValues(t, 0, m.GetUCharAt3(0, 0, 0))
}

func TestSaveAndEncodeRoundTrip(t *testing.T) {
	mat, err := Load(writeTestPNG(t, 4, 4))
	require.NoError(t, err)
	defer mat.Close()

	out := filepath.Join(t.TempDir(), "nested", "crop.png")
	require.NoError(t, Save(out, mat))
	_, err = os.Stat(out)
	require.NoError(t, err)

	data, err := EncodePNG(mat)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())
}

func TestToImageAndBack(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 3))
	src.Set(1, 1, color.RGBA{G: 200, A: 255})

	mat, err := FromImage(src, "from_image")
	require.NoError(t, err)
	defer mat.Close()
	assert.Equal(t, 3, mat.Channels())

	img, err := ToImage(mat)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())

	_, g, _, _ := img.At(1, 1).RGBA()
	assert.EqualValues(t, 200, g>>8)
}
