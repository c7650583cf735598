package simview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrBadGeometry is returned by geometry constructors for degenerate
// shapes.
var ErrBadGeometry = errors.New("simview: invalid geometry")

// ShapeKind identifies a geometry variant. The set is closed: every kind
// listed here has a drawing routine and a required style entry, checked
// when a Renderer is constructed.
type ShapeKind uint8

const (
	// ShapeCircle is a disc described by a radius.
	ShapeCircle ShapeKind = iota
	// ShapeConvexPolygon is a convex hull described by ordered vertices.
	ShapeConvexPolygon
)

// shapeKinds enumerates every known kind, in order.
var shapeKinds = [...]ShapeKind{ShapeCircle, ShapeConvexPolygon}

var shapeKindNames = [...]string{
	ShapeCircle:        "circle",
	ShapeConvexPolygon: "convex-polygon",
}

// String returns the kind's wire/style-table name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "unknown"
}

// AABB is an axis-aligned bounding box in body-local coordinates:
// a center offset from the body origin plus half-extents.
type AABB struct {
	Center gg.Vec2
	HalfW  float64
	HalfH  float64
}

// Geometry describes a body's shape. It is immutable once constructed.
// This is a sealed interface - only types in this package implement it.
type Geometry interface {
	// Kind reports the shape variant.
	Kind() ShapeKind

	// Bounds reports the shape's bounding box in body-local coordinates.
	Bounds() AABB

	// geometryMarker is an unexported method that seals this interface.
	geometryMarker()
}

// Circle is a disc centered on the body origin.
type Circle struct {
	radius float64
}

// NewCircle creates a circle geometry. The radius must be positive.
func NewCircle(radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrBadGeometry, radius)
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return c.radius }

// Kind implements Geometry.
func (c *Circle) Kind() ShapeKind { return ShapeCircle }

// Bounds implements Geometry. A circle is centered on the origin.
func (c *Circle) Bounds() AABB {
	return AABB{HalfW: c.radius, HalfH: c.radius}
}

func (c *Circle) geometryMarker() {}

// ConvexPolygon is a convex hull given as ordered vertices in body-local
// coordinates. Two vertices are allowed and describe an open segment.
type ConvexPolygon struct {
	verts  []gg.Vec2
	bounds AABB
}

// NewConvexPolygon creates a polygon geometry from at least two vertices.
// The vertex slice is copied; the bounding box is derived once here.
func NewConvexPolygon(verts []gg.Vec2) (*ConvexPolygon, error) {
	if len(verts) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertices, got %d", ErrBadGeometry, len(verts))
	}
	vs := append([]gg.Vec2(nil), verts...)

	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = gg.V2(min(lo.X, v.X), min(lo.Y, v.Y))
		hi = gg.V2(max(hi.X, v.X), max(hi.Y, v.Y))
	}
	return &ConvexPolygon{
		verts: vs,
		bounds: AABB{
			Center: lo.Add(hi).Mul(0.5),
			HalfW:  (hi.X - lo.X) / 2,
			HalfH:  (hi.Y - lo.Y) / 2,
		},
	}, nil
}

// Vertices returns a copy of the vertex list in input order.
func (p *ConvexPolygon) Vertices() []gg.Vec2 {
	return append([]gg.Vec2(nil), p.verts...)
}

// Kind implements Geometry.
func (p *ConvexPolygon) Kind() ShapeKind { return ShapeConvexPolygon }

// Bounds implements Geometry.
func (p *ConvexPolygon) Bounds() AABB { return p.bounds }

func (p *ConvexPolygon) geometryMarker() {}
