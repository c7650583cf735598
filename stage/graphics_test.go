// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestGraphics_Record(t *testing.T) {
	g := NewGraphics()
	g.MoveTo(1, 2)
	g.LineTo(3, 4)
	g.ClosePath()
	g.DrawCircle(5, 6, 7)
	g.FillStroke()

	cmds := g.Commands()
	wantOps := []Op{OpMoveTo, OpLineTo, OpClosePath, OpCircle, OpFillStroke}
	if len(cmds) != len(wantOps) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(wantOps))
	}
	for i, op := range wantOps {
		if cmds[i].Op != op {
			t.Errorf("cmds[%d].Op = %v, want %v", i, cmds[i].Op, op)
		}
	}
	if cmds[0].X != 1 || cmds[0].Y != 2 {
		t.Errorf("MoveTo recorded (%v, %v), want (1, 2)", cmds[0].X, cmds[0].Y)
	}
	if cmds[3].R != 7 {
		t.Errorf("DrawCircle recorded r = %v, want 7", cmds[3].R)
	}
}

func TestGraphics_StyleSnapshot(t *testing.T) {
	g := NewGraphics()
	g.SetFill(gg.Red)
	g.SetStroke(gg.Blue, 2)
	g.DrawCircle(0, 0, 5)
	g.FillStroke()

	// Later style changes must not rewrite what was already emitted.
	g.SetStroke(gg.Green, 9)

	cmds := g.Commands()
	emit := cmds[len(cmds)-1]
	if emit.Fill != gg.Red {
		t.Errorf("emit fill = %v, want red", emit.Fill)
	}
	if emit.Stroke != gg.Blue {
		t.Errorf("emit stroke = %v, want blue", emit.Stroke)
	}
	if emit.Width != 2 {
		t.Errorf("emit width = %v, want 2", emit.Width)
	}
}

func TestGraphics_ClearKeepsStyles(t *testing.T) {
	g := NewGraphics()
	g.SetStroke(gg.Blue, 3)
	g.MoveTo(0, 0)
	g.LineTo(1, 1)
	g.StrokeOnly()

	g.Clear()
	if len(g.Commands()) != 0 {
		t.Fatalf("Commands() after Clear = %d, want 0", len(g.Commands()))
	}

	g.MoveTo(0, 0)
	g.LineTo(2, 2)
	g.StrokeOnly()
	cmds := g.Commands()
	emit := cmds[len(cmds)-1]
	if emit.Stroke != gg.Blue || emit.Width != 3 {
		t.Errorf("styles lost across Clear: got %v width %v", emit.Stroke, emit.Width)
	}
}

func TestGraphics_SetStrokeClampsWidth(t *testing.T) {
	g := NewGraphics()
	g.SetStroke(gg.Black, -3)
	g.MoveTo(0, 0)
	g.LineTo(1, 0)
	g.StrokeOnly()

	cmds := g.Commands()
	if w := cmds[len(cmds)-1].Width; w != 0 {
		t.Errorf("negative stroke width recorded as %v, want 0", w)
	}
}

func TestGraphics_LocalBounds(t *testing.T) {
	g := NewGraphics()

	// Un-emitted path points do not count.
	g.MoveTo(100, 100)
	if _, _, ok := g.LocalBounds(); ok {
		t.Error("pending path should not produce bounds")
	}

	g.SetStroke(gg.Black, 2)
	g.DrawCircle(10, 10, 5)
	g.FillStroke()

	lo, hi, ok := g.LocalBounds()
	if !ok {
		t.Fatal("emitted circle should have bounds")
	}
	// Circle box grown by half the stroke width; the pending MoveTo at
	// (100, 100) was emitted with it and stretches the box.
	if !lo.Approx(gg.V2(4, 4), 1e-10) {
		t.Errorf("lo = %v, want (4, 4)", lo)
	}
	if !hi.Approx(gg.V2(101, 101), 1e-10) {
		t.Errorf("hi = %v, want (101, 101)", hi)
	}
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op     Op
		expect string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpClosePath, "ClosePath"},
		{OpCircle, "Circle"},
		{OpFillStroke, "FillStroke"},
		{OpStroke, "Stroke"},
		{Op(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expect {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.expect)
		}
	}
}
