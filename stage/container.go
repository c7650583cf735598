// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/gg"
)

// Container is a node that groups children and draws them in order.
// Children inherit the container's transform.
type Container struct {
	node
	children []Node
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{node: newNode()}
}

// AddChild appends a node to the container's child list.
// A node that is already attached elsewhere is re-parented: it is removed
// from its previous container first. Adding nil or adding a container to
// itself is a no-op.
func (ct *Container) AddChild(n Node) {
	if n == nil || n.core() == &ct.node {
		return
	}
	if p := n.core().parent; p != nil {
		p.RemoveChild(n)
	}
	n.core().parent = ct
	ct.children = append(ct.children, n)
}

// RemoveChild detaches a node from the container.
// Reports whether the node was a child.
func (ct *Container) RemoveChild(n Node) bool {
	if n == nil {
		return false
	}
	for i, c := range ct.children {
		if c.core() == n.core() {
			ct.children = append(ct.children[:i], ct.children[i+1:]...)
			n.core().parent = nil
			return true
		}
	}
	return false
}

// Len returns the number of direct children.
func (ct *Container) Len() int { return len(ct.children) }

// Children returns a copy of the child list in draw order.
func (ct *Container) Children() []Node {
	out := make([]Node, len(ct.children))
	copy(out, ct.children)
	return out
}

// draw renders all children in order. The first error aborts the pass.
func (ct *Container) draw(c *gg.Context) error {
	for _, child := range ct.children {
		if err := drawNode(c, child); err != nil {
			return err
		}
	}
	return nil
}

// localBounds is the union of the children's bounds, each offset by the
// child's position and pivot. Rotation and scale are ignored here; this is
// a debug aid, not precise geometry.
func (ct *Container) localBounds() (gg.Vec2, gg.Vec2, bool) {
	var lo, hi gg.Vec2
	any := false
	for _, child := range ct.children {
		cmin, cmax, ok := child.localBounds()
		if !ok {
			continue
		}
		st := child.core()
		off := st.pos.Sub(st.pivot)
		cmin = cmin.Add(off)
		cmax = cmax.Add(off)
		if !any {
			lo, hi = cmin, cmax
			any = true
			continue
		}
		lo = gg.V2(min(lo.X, cmin.X), min(lo.Y, cmin.Y))
		hi = gg.V2(max(hi.X, cmax.X), max(hi.Y, cmax.Y))
	}
	return lo, hi, any
}
