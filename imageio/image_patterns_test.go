package imageio

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
	"github.com/wavesynth/wfc/xrand"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func checkerboardImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, black)
	img.Set(1, 0, white)
	img.Set(0, 1, white)
	img.Set(1, 1, black)
	return img
}

func TestNewExtractsTwoPatternsFromCheckerboard(t *testing.T) {
	img := checkerboardImage()
	ip, err := New(img, geom.Size{W: 2, H: 2}, []geom.Orientation{geom.Original})
	assert.NoError(t, err)

	stats, err := ip.GlobalStats()
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.NumPatterns())
	assert.Equal(t, uint32(2), stats.NumWeightedPatterns())
}

func TestToImageRoundTripsSampledPixels(t *testing.T) {
	img := checkerboardImage()
	ip, err := New(img, geom.Size{W: 1, H: 1}, []geom.Orientation{geom.Original})
	assert.NoError(t, err)

	out := ip.ToImage()
	assert.Equal(t, Pixel{}, PixelFromColor(out.At(0, 0)))
	assert.Equal(t, Pixel{R: 0xff, G: 0xff, B: 0xff}, PixelFromColor(out.At(1, 0)))
}

func TestImageFromWaveRendersChosenPatternColour(t *testing.T) {
	img := checkerboardImage()
	ip, err := New(img, geom.Size{W: 2, H: 2}, []geom.Orientation{geom.Original})
	assert.NoError(t, err)
	stats, err := ip.GlobalStats()
	assert.NoError(t, err)

	size := geom.Size{W: 3, H: 3}
	rng := xrand.NewCounter(5)
	w := wave.New(size, stats, rng)

	// Force every cell down to pattern 0 directly, bypassing solve
	// mechanics, to pin down exactly what colour should render.
	for _, cell := range w.Enumerate() {
		cell.RemoveAllExcept(pattern.ID(0), stats)
	}

	out := ip.ImageFromWave(w)
	want := ip.Pattern(pattern.ID(0)).Get(geom.Coord{X: 0, Y: 0})
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			assert.Equal(t, want, PixelFromColor(out.At(x, y)))
		}
	}
}

