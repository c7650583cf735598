// Package simview renders 2D physics simulations with gg.
//
// # Overview
//
// simview is the display side of a physics loop: the host integrates
// bodies, simview turns them into pixels. It keeps a retained display
// tree (package stage), builds one view per body from its geometry, and
// on every tick repositions the views from fresh state snapshots with
// sub-step interpolation before compositing the frame.
//
// # Quick Start
//
//	import "github.com/gogpu/simview"
//
//	r, err := simview.New(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	circle, _ := simview.NewCircle(20)
//	view, err := r.CreateView(circle)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Each tick: rebuild the states, then render.
//	views := []simview.BodyView{{View: view, State: state}}
//	r.Render(views, simview.Meta{Interpolation: frac})
//
// # Architecture
//
// The module is organized into:
//   - Root package: Renderer, Geometry, State, StyleSet
//   - stage: retained display tree (Container, Graphics, Sprite, Label)
//   - texture: async batch loading, atlas manifests
//   - feed: websocket body feed for remote hosts
//   - termview: braille terminal preview
//
// # Threading
//
// A Renderer and its display tree belong to one frame loop. The only
// concurrent part is texture loading, which decodes on its own goroutine
// and reports through a single completion callback.
//
// # Coordinate System
//
// Same as gg: origin top-left, X right, Y down, angles in radians.
// A body's position maps to its view's pivot, so circles rotate around
// their center and polygons around the body origin.
package simview

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
