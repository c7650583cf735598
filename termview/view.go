package termview

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/simview"
)

// DrawView projects a geometry at a rendered pose onto the canvas.
// pos is in world units, scaled by scale into dots; angle rotates the
// shape around the body position the same way the full renderer does.
//
// Circles draw as an outline plus a radial tick showing the rotation;
// polygons as their edge path, closed for three or more vertices.
func DrawView(c *Canvas, g simview.Geometry, pos gg.Vec2, angle float64, scale float64) {
	if c == nil || g == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	switch shape := g.(type) {
	case *simview.Circle:
		r := shape.Radius() * scale
		cx, cy := dot(pos.X*scale), dot(pos.Y*scale)
		c.CircleOutline(cx, cy, dot(r))

		tip := gg.V2(r, 0).Rotate(angle)
		c.Line(cx, cy, dot(pos.X*scale+tip.X), dot(pos.Y*scale+tip.Y))

	case *simview.ConvexPolygon:
		verts := shape.Vertices()
		pts := make([][2]int, len(verts))
		for i, v := range verts {
			w := v.Rotate(angle).Add(pos)
			pts[i] = [2]int{dot(w.X * scale), dot(w.Y * scale)}
		}
		for i := 1; i < len(pts); i++ {
			c.Line(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
		}
		if len(pts) > 2 {
			c.Line(pts[len(pts)-1][0], pts[len(pts)-1][1], pts[0][0], pts[0][1])
		}
	}
}

// dot rounds a scaled coordinate to its dot index.
func dot(v float64) int {
	return int(math.Round(v))
}
