package sprite

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/wardrobe/internal/blend"
)

// DrawOver composites src onto dst with its top-left corner at (x, y) using
// source-over blending. Pixels are copied 1:1 with no filtering; the part of
// src that falls outside dst is clipped.
func DrawOver(dst, src *Image, x, y int) {
	r := image.Rect(x, y, x+src.width, y+src.height).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	sx := r.Min.X - x
	n := r.Dx() * 4
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		sy := dy - y
		srcRow := src.Row(sy)[sx*4 : sx*4+n]
		dstRow := dst.Row(dy)[r.Min.X*4 : r.Min.X*4+n]
		blend.SpanOver(dstRow, srcRow)
	}
}

// Scale returns a copy of src scaled by factor using nearest-neighbour
// sampling. The result is at least 1×1.
func Scale(src *Image, factor float64) (*Image, error) {
	w := max(1, int(float64(src.width)*factor+0.5))
	h := max(1, int(float64(src.height)*factor+0.5))
	return Resize(src, w, h)
}

// Resize returns a copy of src resized to exactly w×h using nearest-neighbour
// sampling.
func Resize(src *Image, w, h int) (*Image, error) {
	out, err := New(w, h)
	if err != nil {
		return nil, err
	}
	dst := out.RGBA()
	xdraw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return out, nil
}
