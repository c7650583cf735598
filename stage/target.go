// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Target is where flushed frames go. Implementations wrap a gg drawing
// context and decide what "present" means: nothing for an offscreen
// image, a swapchain submit for a window.
//
// Targets are not safe for concurrent use; like the rest of the display
// tree they belong to one frame loop.
type Target interface {
	// Size returns the target dimensions in pixels.
	Size() (int, int)

	// Canvas returns the drawing context frames are composited into.
	Canvas() *gg.Context

	// Present makes the composited frame visible.
	Present() error
}

// ImageTarget renders into an offscreen gg context. Present is a no-op;
// the pixels are read back with Snapshot or written out with SavePNG.
type ImageTarget struct {
	ctx *gg.Context
}

// NewImageTarget creates an offscreen target of the given size.
func NewImageTarget(width, height int) *ImageTarget {
	return &ImageTarget{ctx: gg.NewContext(width, height)}
}

// Size implements Target.
func (t *ImageTarget) Size() (int, int) {
	return t.ctx.Width(), t.ctx.Height()
}

// Canvas implements Target.
func (t *ImageTarget) Canvas() *gg.Context { return t.ctx }

// Present implements Target. Offscreen frames are complete once drawn.
func (t *ImageTarget) Present() error { return nil }

// Snapshot returns the current frame pixels.
func (t *ImageTarget) Snapshot() image.Image { return t.ctx.Image() }

// SavePNG writes the current frame to a PNG file.
func (t *ImageTarget) SavePNG(path string) error { return t.ctx.SavePNG(path) }

// EncodePNG writes the current frame as PNG to w.
func (t *ImageTarget) EncodePNG(w io.Writer) error { return t.ctx.EncodePNG(w) }
