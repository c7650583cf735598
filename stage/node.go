// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/gg"
)

// Node is a single element of the display tree.
// This is a sealed interface - only types in this package implement it.
//
// Every node carries a local transform (position, rotation, scale, pivot),
// an opacity and a visibility flag. Concrete node types are Container,
// Graphics, Sprite, MovieClip and Label.
//
// Nodes are not safe for concurrent use. The display tree belongs to the
// frame loop that drives it; see Stage.
type Node interface {
	// SetPosition moves the node's origin in parent coordinates.
	SetPosition(x, y float64)

	// Position returns the node's origin in parent coordinates.
	Position() gg.Vec2

	// SetRotation sets the node's rotation around its pivot, in radians.
	SetRotation(rad float64)

	// Rotation returns the node's rotation in radians.
	Rotation() float64

	// SetScale sets the node's local scale factors.
	SetScale(x, y float64)

	// Scale returns the node's local scale factors.
	Scale() gg.Vec2

	// SetPivot sets the point, in local coordinates, that maps onto the
	// node's position and that rotation and scale pivot around.
	SetPivot(x, y float64)

	// Pivot returns the node's pivot point in local coordinates.
	Pivot() gg.Vec2

	// SetAlpha sets the node's opacity in [0, 1].
	SetAlpha(a float64)

	// Alpha returns the node's opacity.
	Alpha() float64

	// SetVisible shows or hides the node (and, for containers, its subtree).
	SetVisible(v bool)

	// Visible reports whether the node is drawn.
	Visible() bool

	// Parent returns the container this node is attached to, or nil.
	Parent() *Container

	// core is an unexported method that seals this interface.
	// Only types in this package can implement Node.
	core() *node

	// draw renders the node into the context in local coordinates.
	// The caller has already applied the node's transform.
	draw(c *gg.Context) error

	// localBounds reports the node's untransformed bounding box, when one
	// is known. Used for debug overlays.
	localBounds() (min, max gg.Vec2, ok bool)
}

// node holds the transform and display state shared by all node types.
type node struct {
	pos      gg.Vec2
	rotation float64
	scale    gg.Vec2
	pivot    gg.Vec2
	alpha    float64
	visible  bool
	parent   *Container
}

// newNode returns node state with identity transform, full opacity,
// visible.
func newNode() node {
	return node{
		scale:   gg.V2(1, 1),
		alpha:   1,
		visible: true,
	}
}

func (n *node) SetPosition(x, y float64) { n.pos = gg.V2(x, y) }
func (n *node) Position() gg.Vec2        { return n.pos }
func (n *node) SetRotation(rad float64)  { n.rotation = rad }
func (n *node) Rotation() float64        { return n.rotation }
func (n *node) SetScale(x, y float64)    { n.scale = gg.V2(x, y) }
func (n *node) Scale() gg.Vec2           { return n.scale }
func (n *node) SetPivot(x, y float64)    { n.pivot = gg.V2(x, y) }
func (n *node) Pivot() gg.Vec2           { return n.pivot }
func (n *node) Alpha() float64           { return n.alpha }
func (n *node) SetVisible(v bool)        { n.visible = v }
func (n *node) Visible() bool            { return n.visible }
func (n *node) Parent() *Container       { return n.parent }

// SetAlpha clamps to [0, 1].
func (n *node) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n.alpha = a
}

// core implements the sealed Node interface.
func (n *node) core() *node { return n }

// Bounds reports a node's untransformed local bounding box. ok is false
// when the node has no known extent, such as an empty Graphics or a
// Label, whose size depends on its font.
func Bounds(n Node) (min, max gg.Vec2, ok bool) {
	return n.localBounds()
}

// drawNode applies a node's transform and renders it.
// Invisible nodes are skipped entirely, subtree included.
func drawNode(c *gg.Context, n Node) error {
	if !n.Visible() {
		return nil
	}
	st := n.core()
	c.Push()
	c.Translate(st.pos.X, st.pos.Y)
	if st.rotation != 0 {
		c.Rotate(st.rotation)
	}
	if st.scale.X != 1 || st.scale.Y != 1 {
		c.Scale(st.scale.X, st.scale.Y)
	}
	if st.pivot.X != 0 || st.pivot.Y != 0 {
		c.Translate(-st.pivot.X, -st.pivot.Y)
	}
	err := n.draw(c)
	c.Pop()
	return err
}
