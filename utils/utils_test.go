package utils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

func TestReadImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	fillRect(img, img.Bounds(), color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	path := writePNG(t, img)

	got, err := ReadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), got.Bounds())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestReadImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.png")},
		{"unsupported content", garbage},
		{"directory", dir},
		{"empty path", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ReadImage(tt.path)
			assert.Error(t, err)
			assert.Nil(t, img)
		})
	}
}

func TestDownscale(t *testing.T) {
	big := image.NewNRGBA(image.Rect(0, 0, 1000, 500))
	small := Downscale(big, 256)
	assert.Equal(t, 256, small.Bounds().Dx())
	assert.Equal(t, 128, small.Bounds().Dy())

	tiny := image.NewNRGBA(image.Rect(0, 0, 20, 30))
	assert.Same(t, tiny, Downscale(tiny, 256))
}

func TestMergeDuplicates(t *testing.T) {
	red := rgb8(200, 10, 10)
	blue := rgb8(10, 10, 200)
	merged := MergeDuplicates([]WeightedColor{
		{Col: red, Weight: 2},
		{Col: blue, Weight: 3},
		{Col: red, Weight: 4},
	})
	require.Len(t, merged, 2)
	assert.InDelta(t, 6.0, merged[0].Weight, 1e-9)
	assert.InDelta(t, 3.0, merged[1].Weight, 1e-9)
}

func TestSortByWeight(t *testing.T) {
	p := []WeightedColor{
		{Col: rgb8(1, 1, 1), Weight: 1},
		{Col: rgb8(2, 2, 2), Weight: 5},
		{Col: rgb8(3, 3, 3), Weight: 3},
	}
	SortByWeight(p)
	assert.Equal(t, []float64{5, 3, 1}, []float64{p[0].Weight, p[1].Weight, p[2].Weight})
}

func TestSelectDiverseWeightedColors(t *testing.T) {
	cands := []WeightedColor{
		{Col: rgb8(250, 0, 0), Weight: 10},
		{Col: rgb8(248, 2, 2), Weight: 9},
		{Col: rgb8(0, 0, 250), Weight: 4},
		{Col: rgb8(0, 250, 0), Weight: 3},
	}

	got := SelectDiverseWeightedColors(cands, 3)
	require.Len(t, got, 3)
	assert.Equal(t, cands[0].Col, got[0].Col, "strongest color seeds the selection")
	for _, c := range got[1:] {
		assert.NotEqual(t, cands[1].Col, c.Col, "near-duplicate of the seed should lose to distinct colors")
	}

	assert.Nil(t, SelectDiverseWeightedColors(nil, 3))
	assert.Nil(t, SelectDiverseWeightedColors(cands, 0))
	assert.Len(t, SelectDiverseWeightedColors(cands, 10), len(cands))
}

func blocksImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillRect(img, image.Rect(0, 0, 100, 60), color.NRGBA{R: 198, G: 48, B: 59, A: 255})
	fillRect(img, image.Rect(0, 60, 100, 90), color.NRGBA{R: 24, G: 144, B: 242, A: 255})
	fillRect(img, image.Rect(0, 90, 100, 100), color.NRGBA{R: 242, G: 188, B: 12, A: 255})
	return img
}

func assertNear(t *testing.T, want color.NRGBA, got colorful.Color) {
	t.Helper()
	r, g, b := got.RGB255()
	for _, d := range []int{int(r) - int(want.R), int(g) - int(want.G), int(b) - int(want.B)} {
		assert.LessOrEqual(t, max(d, -d), 12, "got %s, want %v", got.Hex(), want)
	}
}

func TestExtractPalette(t *testing.T) {
	got := ExtractPalette(blocksImage(), 10, 5)
	require.GreaterOrEqual(t, len(got), 3)
	require.LessOrEqual(t, len(got), 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Weight, got[i].Weight, "palette must be ordered by weight")
	}

	// Fill colors come back in population order: 60%, 30%, 10%.
	assertNear(t, color.NRGBA{R: 198, G: 48, B: 59}, got[0].Col)
	assertNear(t, color.NRGBA{R: 24, G: 144, B: 242}, got[1].Col)
	assertNear(t, color.NRGBA{R: 242, G: 188, B: 12}, got[2].Col)
}

func TestExtractPaletteIsRepeatable(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8((x + y) / 2), A: 255})
		}
	}

	first := ExtractPalette(img, 10, 5)
	require.NotEmpty(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractPalette(img, 10, 5), "run %d", i)
	}
}

func TestExtractPaletteSolidImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	fillRect(img, img.Bounds(), color.NRGBA{R: 90, G: 90, B: 90, A: 255})

	got := ExtractPalette(img, 10, 5)
	require.Len(t, got, 1)
	r, g, b := got[0].Col.RGB255()
	assert.Equal(t, []uint8{90, 90, 90}, []uint8{r, g, b})
}

func TestKMeansCandidates(t *testing.T) {
	got := KMeansCandidates(blocksImage(), 10, 5)
	require.NotEmpty(t, got)
	total := 0.0
	for _, c := range got {
		total += c.Weight
	}
	assert.GreaterOrEqual(t, total, 1000.0, "every sampled pixel lands in a cluster")
}

func TestKMeansCandidatesSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	assert.Empty(t, KMeansCandidates(img, 1, 5))
	assert.Nil(t, ExtractPalette(img, 10, 0))
}
