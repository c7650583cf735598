// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stage provides a small retained-mode display tree over gg.
//
// A Stage owns two containers: the Root tree, drawn with the stage's
// background and pixel offset applied, and an Overlay tree drawn above it
// in screen coordinates (debug boxes, metrics text). Nodes record what to
// draw; Flush replays the whole tree into a Target every frame, so moving
// a node between flushes is just a SetPosition call.
//
// The package is deliberately single-threaded: a stage and its nodes
// belong to the frame loop that drives them. Nothing here locks.
package stage

import (
	"errors"

	"github.com/gogpu/gg"
)

// ErrNoTarget is returned by Flush when no render target is supplied.
var ErrNoTarget = errors.New("stage: no render target")

// Stage is the top of a display tree plus its compositing policy.
type Stage struct {
	width, height int

	root    *Container
	overlay *Container

	background gg.RGBA
	offset     gg.Vec2
}

// New creates a stage with empty root and overlay trees and a white
// background.
func New(width, height int) *Stage {
	return &Stage{
		width:      width,
		height:     height,
		root:       NewContainer(),
		overlay:    NewContainer(),
		background: gg.White,
	}
}

// Size returns the stage dimensions in pixels.
func (s *Stage) Size() (int, int) { return s.width, s.height }

// Root returns the main display tree. Body views attach here.
func (s *Stage) Root() *Container { return s.root }

// Overlay returns the screen-space tree drawn above the root.
// The pixel offset does not apply to it.
func (s *Stage) Overlay() *Container { return s.overlay }

// SetBackground sets the color the frame is cleared with.
func (s *Stage) SetBackground(c gg.RGBA) { s.background = c }

// Background returns the clear color.
func (s *Stage) Background() gg.RGBA { return s.background }

// SetOffset sets a pixel offset added to all root-tree drawing.
func (s *Stage) SetOffset(x, y float64) { s.offset = gg.V2(x, y) }

// Offset returns the root-tree pixel offset.
func (s *Stage) Offset() gg.Vec2 { return s.offset }

// Flush composites one frame: clear with the background, draw the root
// tree shifted by the offset, draw the overlay tree unshifted, then
// present the target.
func (s *Stage) Flush(t Target) error {
	if t == nil {
		return ErrNoTarget
	}
	c := t.Canvas()
	c.ClearWithColor(s.background)

	c.Push()
	c.Translate(s.offset.X, s.offset.Y)
	err := drawNode(c, s.root)
	c.Pop()
	if err != nil {
		return err
	}

	if err := drawNode(c, s.overlay); err != nil {
		return err
	}
	return t.Present()
}
