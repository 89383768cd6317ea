package sambanova

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a small valid PNG into a temp dir and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestImageDataURIRoundTrip(t *testing.T) {
	path := writeTestPNG(t)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	uri, err := imageDataURI(path)
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	assert.Equal(t, original, decoded, "base64 round trip must be byte-identical")
}

func TestImageDataURIMissingFile(t *testing.T) {
	var validationErr *ValidationError
	_, err := imageDataURI(filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "image file not found")
}

func TestImageDataURIUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not pixels"), 0o600))

	var validationErr *ValidationError
	_, err := imageDataURI(path)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "not a decodable image")
}
