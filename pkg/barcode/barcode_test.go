package barcode_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
	"github.com/dmitrymomot/commonkit/pkg/barcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns invalid error when data is empty", func(t *testing.T) {
		t.Parallel()

		result, err := barcode.Generate(barcode.FormatQR, nil, 256, 256)

		require.Error(t, err, "Generate should return an error with empty data")
		require.Nil(t, result, "Generate should not return PNG data")
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})

	t.Run("returns invalid error when data cannot be marshaled", func(t *testing.T) {
		t.Parallel()

		_, err := barcode.Generate(barcode.FormatQR, map[string]any{"ch": make(chan int)}, 256, 256)

		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		t.Parallel()

		_, err := barcode.Generate(barcode.Format("pdf417"), map[string]any{"id": 1}, 256, 256)

		require.Error(t, err)
		assert.True(t, errors.Is(err, barcode.ErrUnsupportedFormat))
	})

	t.Run("generates square QR code using the smaller side", func(t *testing.T) {
		t.Parallel()

		result, err := barcode.Generate(barcode.FormatQR, map[string]any{"id": 42}, 400, 300)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err, "Result should be a valid PNG image")
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())
	})

	t.Run("uses default size when size is not positive", func(t *testing.T) {
		t.Parallel()

		result, err := barcode.Generate(barcode.FormatQR, map[string]any{"id": 42}, 0, -10)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx(), "Image width should be default 256px")
	})

	t.Run("generates code128 image", func(t *testing.T) {
		t.Parallel()

		result, err := barcode.Generate(barcode.FormatCode128, map[string]any{"sku": "A-1"}, 600, 120)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 120, img.Bounds().Dy())
		assert.GreaterOrEqual(t, img.Bounds().Dx(), 600)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	data := map[string]any{"order": float64(42), "customer": "Ada"}

	for _, format := range []barcode.Format{barcode.FormatQR, barcode.FormatCode128} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			img, err := barcode.Generate(format, data, 600, 200)
			require.NoError(t, err)

			got, err := barcode.Read(bytes.NewReader(img))
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("rejects non png input", func(t *testing.T) {
		t.Parallel()

		_, err := barcode.Read(bytes.NewReader([]byte("not an image")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, barcode.ErrFailedToDecode))
	})

	t.Run("read file reports missing file as not exists", func(t *testing.T) {
		t.Parallel()

		_, err := barcode.ReadFile(filepath.Join(t.TempDir(), "missing.png"))
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotExists, apperr.KindOf(err))
	})
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	path, err := barcode.GenerateFile(barcode.FormatQR, map[string]any{"ticket": "T-9"}, 256, 256)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	assert.Equal(t, ".png", filepath.Ext(path))
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(path))

	got, err := barcode.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ticket": "T-9"}, got)
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	uri, err := barcode.GenerateBase64Image(barcode.FormatQR, map[string]any{"a": "b"}, 128, 128)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	got, err := barcode.Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, got)

	_, err = barcode.GenerateBase64Image(barcode.FormatQR, nil, 128, 128)
	assert.True(t, apperr.Is(err, apperr.KindInvalid))
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	g := barcode.NewGenerator(barcode.Config{Width: 128, Height: 128})

	img, err := g.Generate(map[string]any{"id": "x"})
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 128, decoded.Bounds().Dx())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := barcode.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, barcode.Config{Format: barcode.FormatQR, Width: 256, Height: 256}, cfg)
}
