// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/gg"
)

// Op identifies one recorded Graphics operation.
type Op uint8

const (
	// OpMoveTo starts a new subpath at a point.
	OpMoveTo Op = iota
	// OpLineTo extends the current subpath with a line segment.
	OpLineTo
	// OpClosePath closes the current subpath back to its start.
	OpClosePath
	// OpCircle records a full circle as a standalone primitive.
	OpCircle
	// OpFillStroke fills, then strokes, the accumulated path.
	OpFillStroke
	// OpStroke strokes the accumulated path without filling.
	OpStroke
)

var opNames = [...]string{
	OpMoveTo:     "MoveTo",
	OpLineTo:     "LineTo",
	OpClosePath:  "ClosePath",
	OpCircle:     "Circle",
	OpFillStroke: "FillStroke",
	OpStroke:     "Stroke",
}

// String returns the name of the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded Graphics operation. Which fields are meaningful
// depends on Op: path verbs use X, Y (and R for OpCircle); the emit verbs
// OpFillStroke and OpStroke capture the style in effect when they were
// recorded.
type Command struct {
	Op   Op
	X, Y float64
	R    float64

	Fill   gg.RGBA
	Stroke gg.RGBA
	Width  float64
}

// Graphics is a retained vector drawing node. Calls record commands; the
// commands replay against a gg.Context every time the stage flushes, so a
// Graphics built once keeps drawing frame after frame as its transform
// changes.
//
// The drawing model mirrors an immediate vector canvas: build a path with
// MoveTo/LineTo/ClosePath or DrawCircle, then emit it with FillStroke or
// StrokeOnly using the styles set beforehand.
type Graphics struct {
	node
	cmds []Command

	fill   gg.RGBA
	stroke gg.RGBA
	width  float64
}

// NewGraphics creates an empty graphics node with no styles set.
func NewGraphics() *Graphics {
	return &Graphics{node: newNode(), width: 1}
}

// SetFill sets the fill color for subsequent emits.
func (g *Graphics) SetFill(c gg.RGBA) { g.fill = c }

// SetStroke sets the stroke color and width for subsequent emits.
// Width is clamped at zero.
func (g *Graphics) SetStroke(c gg.RGBA, width float64) {
	if width < 0 {
		width = 0
	}
	g.stroke = c
	g.width = width
}

// MoveTo starts a new subpath at (x, y) in local coordinates.
func (g *Graphics) MoveTo(x, y float64) {
	g.cmds = append(g.cmds, Command{Op: OpMoveTo, X: x, Y: y})
}

// LineTo extends the current subpath to (x, y).
func (g *Graphics) LineTo(x, y float64) {
	g.cmds = append(g.cmds, Command{Op: OpLineTo, X: x, Y: y})
}

// ClosePath closes the current subpath.
func (g *Graphics) ClosePath() {
	g.cmds = append(g.cmds, Command{Op: OpClosePath})
}

// DrawCircle records a circle centered at (x, y) with radius r.
func (g *Graphics) DrawCircle(x, y, r float64) {
	g.cmds = append(g.cmds, Command{Op: OpCircle, X: x, Y: y, R: r})
}

// FillStroke emits the accumulated path: fill with the current fill color,
// then stroke with the current stroke color and width. The path is
// consumed.
func (g *Graphics) FillStroke() {
	g.cmds = append(g.cmds, Command{
		Op:     OpFillStroke,
		Fill:   g.fill,
		Stroke: g.stroke,
		Width:  g.width,
	})
}

// StrokeOnly emits the accumulated path as a stroke without filling.
func (g *Graphics) StrokeOnly() {
	g.cmds = append(g.cmds, Command{
		Op:     OpStroke,
		Stroke: g.stroke,
		Width:  g.width,
	})
}

// Clear drops every recorded command. Styles are kept.
func (g *Graphics) Clear() { g.cmds = g.cmds[:0] }

// Commands returns a copy of the recorded command sequence.
func (g *Graphics) Commands() []Command {
	out := make([]Command, len(g.cmds))
	copy(out, g.cmds)
	return out
}

// draw replays the recorded commands.
func (g *Graphics) draw(c *gg.Context) error {
	for _, cmd := range g.cmds {
		switch cmd.Op {
		case OpMoveTo:
			c.MoveTo(cmd.X, cmd.Y)
		case OpLineTo:
			c.LineTo(cmd.X, cmd.Y)
		case OpClosePath:
			c.ClosePath()
		case OpCircle:
			c.DrawCircle(cmd.X, cmd.Y, cmd.R)
		case OpFillStroke:
			c.SetColor(fade(cmd.Fill, g.alpha).Color())
			if err := c.FillPreserve(); err != nil {
				return err
			}
			c.SetColor(fade(cmd.Stroke, g.alpha).Color())
			c.SetLineWidth(cmd.Width)
			if err := c.Stroke(); err != nil {
				return err
			}
		case OpStroke:
			c.SetColor(fade(cmd.Stroke, g.alpha).Color())
			c.SetLineWidth(cmd.Width)
			if err := c.Stroke(); err != nil {
				return err
			}
		}
	}
	c.ClearPath()
	return nil
}

// LocalBounds returns the bounding box of the recorded geometry in local
// coordinates, including stroke widths. ok is false when nothing has been
// emitted yet.
func (g *Graphics) LocalBounds() (min, max gg.Vec2, ok bool) {
	return g.localBounds()
}

func (g *Graphics) localBounds() (gg.Vec2, gg.Vec2, bool) {
	var lo, hi gg.Vec2
	any := false

	// Pending path points since the last emit; an emit folds them into the
	// result expanded by half the stroke width.
	var pend []gg.Vec2

	join := func(p gg.Vec2, grow float64) {
		pmin := gg.V2(p.X-grow, p.Y-grow)
		pmax := gg.V2(p.X+grow, p.Y+grow)
		if !any {
			lo, hi = pmin, pmax
			any = true
			return
		}
		lo = gg.V2(min(lo.X, pmin.X), min(lo.Y, pmin.Y))
		hi = gg.V2(max(hi.X, pmax.X), max(hi.Y, pmax.Y))
	}

	for _, cmd := range g.cmds {
		switch cmd.Op {
		case OpMoveTo, OpLineTo:
			pend = append(pend, gg.V2(cmd.X, cmd.Y))
		case OpCircle:
			pend = append(pend,
				gg.V2(cmd.X-cmd.R, cmd.Y-cmd.R),
				gg.V2(cmd.X+cmd.R, cmd.Y+cmd.R))
		case OpFillStroke, OpStroke:
			grow := cmd.Width / 2
			for _, p := range pend {
				join(p, grow)
			}
			pend = pend[:0]
		}
	}
	return lo, hi, any
}

// fade scales a color's alpha by the node opacity.
func fade(c gg.RGBA, alpha float64) gg.RGBA {
	if alpha >= 1 {
		return c
	}
	c.A *= alpha
	return c
}
