package simview

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/simview/stage"
)

// ErrUnsupportedShape is returned by CreateView for a nil geometry or a
// shape kind with no style entry.
var ErrUnsupportedShape = errors.New("simview: unsupported shape")

// CreateView builds a vector view for a body's geometry, appends it to
// the stage root and returns it. The caller keeps the handle and feeds it
// to UpdateView (or Render) every frame; the stage keeps drawing it until
// it is removed.
//
// The shape is drawn offset so that the body origin lands on the node's
// pivot: the offset is the padded half-extent, half-width plus the stroke
// width plus one guard pixel, so the stroke never pokes past the node's
// local box. With the pivot set to the same point, SetPosition places the
// geometric center (for circles) or the body origin (for polygons) at the
// body position, and rotation spins around it.
//
// On any failure the display tree is left untouched.
func (r *Renderer) CreateView(g Geometry) (*stage.Graphics, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrUnsupportedShape)
	}
	st, ok := r.styles.styleFor(g.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, g.Kind())
	}

	b := g.Bounds()
	hw := b.HalfW + math.Abs(b.Center.X)
	hh := b.HalfH + math.Abs(b.Center.Y)
	cx := hw + st.LineWidth + 1
	cy := hh + st.LineWidth + 1

	view := stage.NewGraphics()
	view.SetFill(st.Fill)
	view.SetStroke(st.Stroke, st.LineWidth)

	// tick is how far the angle indicator reaches from the center.
	var tick float64

	switch shape := g.(type) {
	case *Circle:
		view.DrawCircle(cx, cy, shape.Radius())
		tick = shape.Radius()
	case *ConvexPolygon:
		verts := shape.Vertices()
		view.MoveTo(verts[0].X+cx, verts[0].Y+cy)
		for _, v := range verts[1:] {
			view.LineTo(v.X+cx, v.Y+cy)
		}
		// Two vertices stay an open segment; more close the outline.
		if len(verts) > 2 {
			view.LineTo(verts[0].X+cx, verts[0].Y+cy)
		}
		tick = hw / 2
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, g.Kind())
	}
	view.FillStroke()

	if st.AngleIndicator.A != 0 {
		view.SetStroke(st.AngleIndicator, 1)
		view.MoveTo(cx, cy)
		view.LineTo(cx+tick, cy)
		view.StrokeOnly()
	}

	view.SetPivot(cx, cy)
	r.stage.Root().AddChild(view)
	Logger().Debug("simview: view created", "shape", g.Kind())
	return view, nil
}

// UpdateView repositions a body view from a state snapshot, extrapolated
// a fraction f of a physics step: position Pos + Vel*f, rotation
// Angle + AngularVel*f. It mutates the node in place and cannot fail;
// with f = 0 the snapshot pose is reproduced exactly.
func UpdateView(n stage.Node, s State, f float64) {
	pos, angle := s.At(f)
	n.SetPosition(pos.X, pos.Y)
	n.SetRotation(angle)
}
