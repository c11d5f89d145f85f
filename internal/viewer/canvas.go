package viewer

import (
	"github.com/Faultbox/vtfview/internal/logger"
	"github.com/Faultbox/vtfview/pkg/vtf"
)

// MinCanvasSize is the minimum logical edge length of the image canvas.
const MinCanvasSize = 256

// RasterFormat is the pixel layout of a decoded raster.
type RasterFormat int

const (
	RasterRGB  RasterFormat = iota // 24-bit, 3 bytes per pixel
	RasterRGBA                     // 32-bit, 4 bytes per pixel
)

// Raster is a decoded view of one (frame, face, mip) selection. It is a
// non-owning view: Pix aliases the canvas's decode buffer, which stays live
// until the next successful decode replaces it.
type Raster struct {
	Format RasterFormat
	Width  int
	Height int
	Pix    []byte
}

// Canvas decodes and caches the selected (frame, face, mip) of the current
// document and tracks the pan/zoom view transform. Frame and face are
// 1-based to match the settings surface; mip is 0-based.
type Canvas struct {
	file *vtf.File

	// Pending selection, observed by the next Paint.
	frame, face, mip int

	// Cache key of the materialized raster; -1 sentinels force a decode.
	curFrame, curFace, curMip int

	buf    []byte // owned pixel storage backing raster
	raster *Raster

	zoom          float32
	panX, panY    int
	width, height int
}

// NewCanvas creates an empty canvas at the minimum size.
func NewCanvas() *Canvas {
	return &Canvas{
		frame: 1, face: 1,
		curFrame: -1, curFace: -1, curMip: -1,
		zoom:  1.0,
		width: MinCanvasSize, height: MinCanvasSize,
	}
}

// SetVTF installs a new document: the decode cache is invalidated, the view
// transform resets, and the canvas grows to fit the base image if needed.
// The previous raster stays on screen until the first paint decodes.
func (c *Canvas) SetVTF(f *vtf.File) {
	c.file = f
	c.curFrame, c.curFace, c.curMip = -1, -1, -1

	c.zoom = 1.0
	c.panX, c.panY = 0, 0

	if f == nil {
		c.buf = nil
		c.raster = nil
		return
	}
	if c.width < f.Width() {
		c.width = f.Width()
	}
	if c.height < f.Height() {
		c.height = f.Height()
	}
}

// SetFrame records the pending frame selection (1-based).
func (c *Canvas) SetFrame(n int) { c.frame = n }

// SetFace records the pending face selection (1-based).
func (c *Canvas) SetFace(n int) { c.face = n }

// SetMip records the pending mip selection (0-based).
func (c *Canvas) SetMip(n int) { c.mip = n }

// Frame returns the pending frame selection.
func (c *Canvas) Frame() int { return c.frame }

// Face returns the pending face selection.
func (c *Canvas) Face() int { return c.face }

// Mip returns the pending mip selection.
func (c *Canvas) Mip() int { return c.mip }

// Zoom returns the current zoom factor.
func (c *Canvas) Zoom() float32 { return c.zoom }

// SetZoom sets the zoom factor.
func (c *Canvas) SetZoom(z float32) { c.zoom = z }

// Pan returns the current pan offset.
func (c *Canvas) Pan() (int, int) { return c.panX, c.panY }

// AddPan shifts the pan offset.
func (c *Canvas) AddPan(dx, dy int) {
	c.panX += dx
	c.panY += dy
}

// Size returns the logical canvas size.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize sets the logical canvas size, clamped to the minimum.
func (c *Canvas) Resize(w, h int) {
	if w < MinCanvasSize {
		w = MinCanvasSize
	}
	if h < MinCanvasSize {
		h = MinCanvasSize
	}
	c.width, c.height = w, h
}

// Paint returns the raster for the pending selection, decoding when the
// selection differs from the cache key. The decode target is RGBA when the
// source format carries alpha, RGB otherwise. A failed decode keeps the
// previous raster and cache key, so the prior image stays visible and the
// next paint retries.
func (c *Canvas) Paint() *Raster {
	if c.file == nil {
		return nil
	}

	if c.frame == c.curFrame && c.face == c.curFace && c.mip == c.curMip {
		return c.raster
	}

	mipW, mipH, _ := vtf.MipmapDimensions(c.file.Width(), c.file.Height(), c.file.Depth(), c.mip)

	src, err := c.file.Data(c.frame-1, c.face-1, 0, c.mip)
	if err != nil {
		logger.Sugar.Errorw("could not read image data",
			"frame", c.frame, "face", c.face, "mip", c.mip, "error", err)
		return c.raster
	}

	hasAlpha := c.file.Format().HasAlpha()
	target := vtf.FormatRGB888
	rformat := RasterRGB
	if hasAlpha {
		target = vtf.FormatRGBA8888
		rformat = RasterRGBA
	}

	// One mip at depth 1 in the target format.
	buf := make([]byte, vtf.MipmapSize(c.file.Width(), c.file.Height(), 1, c.mip, target))

	if err := vtf.Convert(src, buf, mipW, mipH, c.file.Format(), target); err != nil {
		logger.Sugar.Errorw("could not convert image for display",
			"source", c.file.Format(), "target", target, "error", err)
		return c.raster
	}

	// The new decode succeeded; only now is the previous buffer released.
	c.buf = buf
	c.raster = &Raster{Format: rformat, Width: mipW, Height: mipH, Pix: buf}
	c.curFrame, c.curFace, c.curMip = c.frame, c.face, c.mip

	return c.raster
}

// DrawOrigin returns the top-left corner at which the raster is drawn:
// centered in the canvas, offset by the pan.
func (c *Canvas) DrawOrigin(r *Raster) (int, int) {
	if r == nil {
		return 0, 0
	}
	x := c.width/2 - r.Width/2 + c.panX
	y := c.height/2 - r.Height/2 + c.panY
	return x, y
}
