package imageio

import (
	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/pattern"
)

// AnchorCorners returns every pattern id that occurs at the input grid's
// bottom-right corner, across whichever orientations were scanned. A
// tileable texture synthesizer typically wants to veto these from the
// output's own bottom-right corner (via ClearCount) unless toroidal
// tiling is desired, since a wraparound extraction folds that corner's
// pattern across the input's seam.
func AnchorCorners(ip *ImagePatterns) []pattern.ID {
	size := ip.Grid().Size()
	offsetX, offsetY := AnchorOffset(ip)
	corner := geom.Coord{X: size.W - offsetX, Y: size.H - offsetY}

	table := ip.IDGrid().Get(corner)
	seen := make(map[pattern.ID]bool)
	var ids []pattern.ID
	for _, o := range geom.AllOrientations {
		id, ok := table.Get(o)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// AnchorOffset returns the distance from the input grid's bottom-right
// edge that AnchorCorners anchors its corner window at. A caller pinning
// the same corner patterns into an output's own border (via a ForbidHook)
// addresses that border at this same offset from the output's edge.
func AnchorOffset(ip *ImagePatterns) (x, y int) {
	patternSize := ip.patterns.PatternSize()
	// A window anchored any further right/down than this reads past the
	// corner purely via wraparound.
	return patternSize.W - patternSize.W/2, patternSize.H - patternSize.H/2
}
