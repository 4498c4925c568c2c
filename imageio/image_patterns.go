package imageio

import (
	"image"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/overlap"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/wave"
)

// ImagePatterns wraps overlap.Patterns[Pixel], adding image.Image
// conversion at both ends: the input side (New) samples a source image
// into the grid patterns are extracted from, and the output side
// (ToImage/ImageFromWave) renders a grid or a solved Wave back to pixels.
type ImagePatterns struct {
	patterns    *overlap.Patterns[Pixel]
	emptyColour Pixel
}

// New samples img into a grid and extracts patterns of patternSize under
// orientations.
func New(img image.Image, patternSize geom.Size, orientations []geom.Orientation) (*ImagePatterns, error) {
	bounds := img.Bounds()
	size := geom.Size{W: bounds.Dx(), H: bounds.Dy()}
	grid := geom.NewFunc(size, func(c geom.Coord) Pixel {
		return PixelFromColor(img.At(bounds.Min.X+c.X, bounds.Min.Y+c.Y))
	})

	patterns, err := overlap.New(grid, patternSize, orientations)
	if err != nil {
		return nil, err
	}
	return &ImagePatterns{patterns: patterns}, nil
}

// SetEmptyColour sets the fallback colour: ImageFromWave uses it for a
// cell without exactly one admitted pattern, and WeightedAverageColour
// for a cell with no weighted admissions (unless exactly one unweighted
// pattern remains).
func (ip *ImagePatterns) SetEmptyColour(c Pixel) {
	ip.emptyColour = c
}

// ToImage renders the input grid patterns were extracted from.
func (ip *ImagePatterns) ToImage() *image.RGBA {
	grid := ip.patterns.Grid()
	size := grid.Size()
	out := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for coord, px := range grid.Enumerate() {
		out.Set(coord.X, coord.Y, px)
	}
	return out
}

// ImageFromWave renders one pixel per output cell: the top-left sample of
// its chosen pattern, or EmptyColour if the cell has no unique chosen
// pattern (an incomplete or contradicted solve).
func (ip *ImagePatterns) ImageFromWave(w *wave.Wave) *image.RGBA {
	size := w.Size()
	out := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for coord, cell := range w.Enumerate() {
		colour := ip.emptyColour
		if pid, err := cell.ChosenPatternID(); err == nil {
			colour = ip.patterns.Pattern(pid).Get(geom.Coord{X: 0, Y: 0})
		}
		out.Set(coord.X, coord.Y, colour)
	}
	return out
}

// WeightedAverageColour blends every pattern still admitted at cell by
// its weight, for a live preview of a solve in progress. A cell with no
// weighted admissions (or none at all) renders as EmptyColour; a cell
// with exactly one admitted-but-unweighted pattern renders as that
// pattern's colour outright.
func (ip *ImagePatterns) WeightedAverageColour(cell *wave.Cell, stats *pattern.GlobalStats) Pixel {
	sumWeight := cell.SumWeight()
	if sumWeight == 0 {
		if cell.NumCompat() == 1 {
			var sole pattern.ID
			cell.EnumerateAdmitted(func(pid pattern.ID) { sole = pid })
			return ip.patterns.Pattern(sole).Get(geom.Coord{X: 0, Y: 0})
		}
		return ip.emptyColour
	}

	var r, g, b uint64
	cell.EnumerateAdmitted(func(pid pattern.ID) {
		weight := stats.Weight(pid)
		if weight == nil {
			return
		}
		px := ip.patterns.Pattern(pid).Get(geom.Coord{X: 0, Y: 0})
		w := uint64(weight.Value())
		r += uint64(px.R) * w
		g += uint64(px.G) * w
		b += uint64(px.B) * w
	})
	return Pixel{
		R: uint8(r / uint64(sumWeight)),
		G: uint8(g / uint64(sumWeight)),
		B: uint8(b / uint64(sumWeight)),
	}
}

// Grid returns the sampled input grid.
func (ip *ImagePatterns) Grid() *geom.Grid[Pixel] {
	return ip.patterns.Grid()
}

// IDGrid returns, for every input coordinate, the pattern id produced
// under each scanned orientation.
func (ip *ImagePatterns) IDGrid() *geom.Grid[geom.OrientationTable[pattern.ID]] {
	return ip.patterns.IDGrid()
}

// Pattern returns the canonical window for id.
func (ip *ImagePatterns) Pattern(id pattern.ID) geom.TiledSlice[Pixel] {
	return ip.patterns.Pattern(id)
}

// ClearCount zeroes id's occurrence count; see overlap.Patterns.ClearCount.
func (ip *ImagePatterns) ClearCount(id pattern.ID) {
	ip.patterns.ClearCount(id)
}

// GlobalStats builds a pattern.GlobalStats from the extracted patterns.
func (ip *ImagePatterns) GlobalStats() (*pattern.GlobalStats, error) {
	return ip.patterns.GlobalStats()
}
