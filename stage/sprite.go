// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/simview/texture"
)

// Sprite draws a single texture. The anchor selects which point of the
// image, in [0,1] of its size, lands on the node's position: {0,0} is the
// top-left corner (the default), {0.5,0.5} the center.
type Sprite struct {
	node
	tex    *texture.Texture
	anchor gg.Vec2

	// dstW/dstH scale the texture to an explicit size; zero means the
	// texture's natural size.
	dstW, dstH float64
}

// NewSprite creates a sprite for the given texture. A nil texture is
// allowed; the sprite draws nothing until SetTexture is called.
func NewSprite(t *texture.Texture) *Sprite {
	return &Sprite{node: newNode(), tex: t}
}

// SetTexture swaps the drawn texture.
func (s *Sprite) SetTexture(t *texture.Texture) { s.tex = t }

// Texture returns the current texture, which may be nil.
func (s *Sprite) Texture() *texture.Texture { return s.tex }

// SetAnchor sets the anchor point as fractions of the drawn size.
func (s *Sprite) SetAnchor(ax, ay float64) { s.anchor = gg.V2(ax, ay) }

// Anchor returns the anchor point.
func (s *Sprite) Anchor() gg.Vec2 { return s.anchor }

// SetSize forces the drawn size in pixels. Zero restores the natural size.
func (s *Sprite) SetSize(w, h float64) {
	s.dstW, s.dstH = w, h
}

// drawSize returns the effective destination size.
func (s *Sprite) drawSize() (float64, float64) {
	if s.tex == nil {
		return 0, 0
	}
	w, h := s.dstW, s.dstH
	if w <= 0 || h <= 0 {
		tw, th := s.tex.Size()
		w, h = float64(tw), float64(th)
	}
	return w, h
}

func (s *Sprite) draw(c *gg.Context) error {
	// DrawImageEx treats opacity zero as "use the default", so a fully
	// transparent sprite must be skipped here.
	if s.tex == nil || s.alpha <= 0 {
		return nil
	}
	w, h := s.drawSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	region := s.tex.Region()
	c.DrawImageEx(s.tex.Buf(), gg.DrawImageOptions{
		X:         -s.anchor.X * w,
		Y:         -s.anchor.Y * h,
		DstWidth:  w,
		DstHeight: h,
		SrcRect:   &region,
		Opacity:   s.alpha,
	})
	return nil
}

func (s *Sprite) localBounds() (gg.Vec2, gg.Vec2, bool) {
	if s.tex == nil {
		return gg.Vec2{}, gg.Vec2{}, false
	}
	w, h := s.drawSize()
	lo := gg.V2(-s.anchor.X*w, -s.anchor.Y*h)
	return lo, lo.Add(gg.V2(w, h)), true
}
