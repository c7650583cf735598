package texture

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Texture is a named view into pixel data: a whole image, or a sub-region
// of a sprite sheet. Sub-textures share the underlying buffer.
type Texture struct {
	name   string
	buf    *gg.ImageBuf
	region image.Rectangle
}

// New wraps an image buffer as a texture covering the whole buffer.
func New(name string, buf *gg.ImageBuf) *Texture {
	w, h := buf.Bounds()
	return &Texture{
		name:   name,
		buf:    buf,
		region: image.Rect(0, 0, w, h),
	}
}

// FromImage converts a standard image into a texture.
func FromImage(name string, img image.Image) *Texture {
	return New(name, gg.ImageBufFromImage(img))
}

// Name returns the registry name.
func (t *Texture) Name() string { return t.name }

// Buf returns the shared pixel buffer.
func (t *Texture) Buf() *gg.ImageBuf { return t.buf }

// Region returns the texture's rectangle in buffer coordinates.
func (t *Texture) Region() image.Rectangle { return t.region }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) {
	return t.region.Dx(), t.region.Dy()
}

// Sub returns a named sub-texture. r is relative to this texture's own
// origin and is clipped to it. The pixel buffer is shared, not copied.
func (t *Texture) Sub(name string, r image.Rectangle) *Texture {
	abs := r.Add(t.region.Min).Intersect(t.region)
	return &Texture{name: name, buf: t.buf, region: abs}
}

// Scale resamples a texture's region to w x h pixels into a fresh buffer,
// using bilinear filtering.
func Scale(t *Texture, w, h int) *Texture {
	src := t.buf.ToStdImage()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, t.region, xdraw.Src, nil)
	return &Texture{
		name:   t.name,
		buf:    gg.ImageBufFromImage(dst),
		region: image.Rect(0, 0, w, h),
	}
}
