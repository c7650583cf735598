// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package feed

import (
	"encoding/json"
)

// envelope is the outer frame of every feed message. Data stays raw
// until the type is known.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Message types a feed server sends.
const (
	typeCreate  = "create"
	typeDestroy = "destroy"
	typeSync    = "sync"
	typeMeta    = "meta"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// createData announces a new body with its shape and initial pose.
// Radius is set for circles, Vertices for convex polygons.
type createData struct {
	ID       string  `json:"id"`
	Shape    string  `json:"shape"`
	Radius   float64 `json:"radius,omitempty"`
	Vertices []point `json:"vertices,omitempty"`
	Position point   `json:"position"`
	Angle    float64 `json:"angle"`
}

type destroyData struct {
	ID string `json:"id"`
}

// bodySync is one body's kinematic snapshot. Velocities are per second;
// the client rescales them to the server's step so the renderer's
// per-step interpolation stays unit-correct.
type bodySync struct {
	Position        point   `json:"position"`
	Angle           float64 `json:"angle"`
	LinearVelocity  point   `json:"linearVelocity"`
	AngularVelocity float64 `json:"angularVelocity"`
}

// syncData carries a full snapshot of every live body plus the server's
// physics step duration in seconds.
type syncData struct {
	Bodies map[string]bodySync `json:"bodies"`
	Step   float64             `json:"step"`
}

// metaData carries the server-side frame metrics.
type metaData struct {
	FPS float64 `json:"fps"`
	IPF int     `json:"ipf"`
}
