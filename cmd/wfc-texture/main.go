// Command wfc-texture synthesizes a tileable texture from a sample image
// using overlapping-model wave function collapse.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/wavesynth/wfc"
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/imageio"
	"github.com/wavesynth/wfc/pattern"
	"github.com/wavesynth/wfc/xrand"
)

// anchorForbid pins the output row and column that sit offset cells in
// from the bottom and right edges to the input's own bottom-right corner
// patterns, so a tileable output wraps
// back into its own source image at the edges instead of drifting into
// an unrelated tiling.
type anchorForbid struct {
	cornerIDs []pattern.ID
	offset    int
}

// Forbid implements wfc.ForbidHook.
func (a anchorForbid) Forbid(fi *wfc.ForbidInterface, rng xrand.Source) {
	size := fi.WaveSize()
	row := size.H - a.offset
	col := size.W - a.offset
	for x := 0; x < size.W; x++ {
		for _, id := range a.cornerIDs {
			if err := fi.ForbidAllPatternsExcept(geom.Coord{X: x, Y: row}, id); err != nil {
				panic(err)
			}
		}
	}
	for y := 0; y < size.H; y++ {
		for _, id := range a.cornerIDs {
			if err := fi.ForbidAllPatternsExcept(geom.Coord{X: col, Y: y}, id); err != nil {
				panic(err)
			}
		}
	}
}

type args struct {
	inputPath   string
	outputPath  string
	width       int
	height      int
	patternSize int
	seed        uint
	retries     int
	allOrient   bool
	allowCorner bool
}

func parseArgs() args {
	var a args
	flag.StringVar(&a.inputPath, "i", "", "input image path (required)")
	flag.StringVar(&a.outputPath, "o", "", "output image path (required)")
	flag.IntVar(&a.width, "x", 48, "output width")
	flag.IntVar(&a.height, "y", 48, "output height")
	flag.IntVar(&a.patternSize, "p", 3, "pattern size")
	flag.UintVar(&a.seed, "s", 0, "rng seed (0 picks a seed from the process id)")
	flag.IntVar(&a.retries, "r", 10, "number of retries on contradiction")
	flag.BoolVar(&a.allOrient, "a", false, "include all 8 orientations, not just the original")
	flag.BoolVar(&a.allowCorner, "c", false, "allow the input's bottom-right corner pattern in the output's corner")
	flag.Parse()
	return a
}

func synthesize(a args) error {
	if a.inputPath == "" || a.outputPath == "" {
		return fmt.Errorf("wfc-texture: -i and -o are required")
	}

	f, err := os.Open(a.inputPath)
	if err != nil {
		return fmt.Errorf("wfc-texture: opening input: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("wfc-texture: decoding input: %w", err)
	}

	orientations := []geom.Orientation{geom.Original}
	if a.allOrient {
		orientations = geom.AllOrientations[:]
	}

	patterns, err := imageio.New(img, geom.Size{W: a.patternSize, H: a.patternSize}, orientations)
	if err != nil {
		return fmt.Errorf("wfc-texture: extracting patterns: %w", err)
	}

	cornerIDs := imageio.AnchorCorners(patterns)
	offset, _ := imageio.AnchorOffset(patterns)
	forbid := anchorForbid{cornerIDs: cornerIDs, offset: offset}

	if !a.allowCorner {
		for _, id := range cornerIDs {
			patterns.ClearCount(id)
		}
	}

	stats, err := patterns.GlobalStats()
	if err != nil {
		return fmt.Errorf("wfc-texture: building stats: %w", err)
	}

	seed := uint32(a.seed)
	if seed == 0 {
		seed = uint32(os.Getpid())
	}
	log.Printf("wfc-texture: seed=%d", seed)
	rng := xrand.NewCounter(seed)

	outputSize := geom.Size{W: a.width, H: a.height}
	solve := wfc.NewRunOwn(outputSize, stats, geom.WrapXY{}, forbid, rng)
	retry := &wfc.NumTimes{Remaining: a.retries}
	if err := solve.CollapseRetrying(retry, rng); err != nil {
		return fmt.Errorf("too many contradictions: %w", err)
	}

	out := patterns.ImageFromWave(solve.Wave())
	outFile, err := os.Create(a.outputPath)
	if err != nil {
		return fmt.Errorf("wfc-texture: creating output: %w", err)
	}
	defer outFile.Close()
	if err := png.Encode(outFile, out); err != nil {
		return fmt.Errorf("wfc-texture: encoding output: %w", err)
	}
	return nil
}

func main() {
	a := parseArgs()
	if err := synthesize(a); err != nil {
		log.Print(err)
		os.Exit(1)
	}
	os.Exit(0)
}
