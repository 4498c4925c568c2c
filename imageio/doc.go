// Package imageio adapts the overlap/pattern/wave/wfc pipeline to
// standard library images: it turns an image.Image into the grid the
// overlap extractor consumes, and turns a completed (or in-progress)
// Wave back into an image.
package imageio
