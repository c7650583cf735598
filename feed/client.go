// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package feed streams body state from a remote physics server into a
// form the renderer consumes frame by frame.
//
// A Client owns one read goroutine that folds incoming create, destroy,
// sync and meta messages into a snapshot store. The frame loop polls
// Snapshot, Meta and Fraction; it never blocks on the network, and the
// renderer itself is only ever touched by the frame loop.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gorilla/websocket"

	"github.com/gogpu/simview"
)

// ErrClosed is reported by Err after a deliberate Close.
var ErrClosed = errors.New("feed: client closed")

// Body is one remote body as of the latest snapshot. Geometry is set
// once by the create message; Created distinguishes announced bodies
// from ones seen only in sync data, which have no geometry to build a
// view from yet.
type Body struct {
	ID       string
	Geometry simview.Geometry
	State    simview.State
	Created  bool
}

// Client consumes a body stream over a websocket.
type Client struct {
	conn *websocket.Conn

	mu       sync.Mutex
	bodies   map[string]*Body
	order    []string
	fps      float64
	ipf      int
	metaOK   bool
	step     float64
	lastSync time.Time
	err      error
	closed   bool
}

// Dial connects to a feed server and starts the read loop. The context
// bounds the handshake only; the stream itself lives until Close or a
// transport failure.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		conn:   conn,
		bodies: make(map[string]*Body),
	}
	simview.Logger().Info("feed: connected", "url", url)
	go c.readLoop()
	return c, nil
}

// Close tears the connection down. The read loop exits and Err reports
// ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	if c.err == nil {
		c.err = ErrClosed
	}
	c.mu.Unlock()
	return c.conn.Close()
}

// Err returns the terminal state of the stream: nil while it is live,
// ErrClosed after Close, or the first transport error.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Snapshot returns the latest known bodies in creation order.
func (c *Client) Snapshot() []Body {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Body, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.bodies[id])
	}
	return out
}

// Meta returns the last server metrics. ok is false until the first
// meta message arrives.
func (c *Client) Meta() (fps float64, ipf int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps, c.ipf, c.metaOK
}

// Fraction returns how far now is into the server's current physics
// step, clamped to [0, 1]. Before the first sync it is zero.
func (c *Client) Fraction(now time.Time) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step <= 0 || c.lastSync.IsZero() {
		return 0
	}
	f := now.Sub(c.lastSync).Seconds() / c.step
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// readLoop consumes messages until the connection dies. One malformed
// message is dropped with a log line; a transport error is terminal.
func (c *Client) readLoop() {
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.err == nil {
				c.err = err
			}
			c.mu.Unlock()
			simview.Logger().Info("feed: stream ended", "err", err)
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			simview.Logger().Warn("feed: malformed message", "err", err)
			continue
		}
		c.dispatch(env)
	}
}

func (c *Client) dispatch(env envelope) {
	switch env.Type {
	case typeCreate:
		var d createData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			simview.Logger().Warn("feed: malformed create", "err", err)
			return
		}
		c.handleCreate(d)
	case typeDestroy:
		var d destroyData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			simview.Logger().Warn("feed: malformed destroy", "err", err)
			return
		}
		c.handleDestroy(d.ID)
	case typeSync:
		var d syncData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			simview.Logger().Warn("feed: malformed sync", "err", err)
			return
		}
		c.handleSync(d)
	case typeMeta:
		var d metaData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			simview.Logger().Warn("feed: malformed meta", "err", err)
			return
		}
		c.mu.Lock()
		c.fps, c.ipf, c.metaOK = d.FPS, d.IPF, true
		c.mu.Unlock()
	default:
		simview.Logger().Warn("feed: unknown message type", "type", env.Type)
	}
}

// buildGeometry turns create data into a Geometry.
func buildGeometry(d createData) (simview.Geometry, error) {
	switch d.Shape {
	case simview.ShapeCircle.String():
		return simview.NewCircle(d.Radius)
	case simview.ShapeConvexPolygon.String():
		verts := make([]gg.Vec2, len(d.Vertices))
		for i, v := range d.Vertices {
			verts[i] = gg.V2(v.X, v.Y)
		}
		return simview.NewConvexPolygon(verts)
	default:
		return nil, errors.New("feed: unknown shape " + d.Shape)
	}
}

func (c *Client) handleCreate(d createData) {
	if d.ID == "" {
		simview.Logger().Warn("feed: create without id")
		return
	}
	geom, err := buildGeometry(d)
	if err != nil {
		simview.Logger().Warn("feed: create rejected", "id", d.ID, "err", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bodies[d.ID]
	if !ok {
		b = &Body{ID: d.ID}
		c.bodies[d.ID] = b
		c.order = append(c.order, d.ID)
	}
	b.Geometry = geom
	b.Created = true
	b.State.Pos = gg.V2(d.Position.X, d.Position.Y)
	b.State.Angle = d.Angle
	simview.Logger().Debug("feed: body created", "id", d.ID, "shape", d.Shape)
}

func (c *Client) handleDestroy(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.bodies[id]; !ok {
		return
	}
	delete(c.bodies, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
	simview.Logger().Debug("feed: body destroyed", "id", id)
}

func (c *Client) handleSync(d syncData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d.Step > 0 {
		c.step = d.Step
	}
	c.lastSync = time.Now()

	for id, s := range d.Bodies {
		b, ok := c.bodies[id]
		if !ok {
			// Seen before its create message; keep the state so the
			// body renders as soon as its geometry arrives.
			b = &Body{ID: id}
			c.bodies[id] = b
			c.order = append(c.order, id)
		}
		b.State = simview.State{
			Pos:   gg.V2(s.Position.X, s.Position.Y),
			Angle: s.Angle,
			// Wire velocities are per second; the renderer interpolates
			// in fractions of a step.
			Vel:        gg.V2(s.LinearVelocity.X*c.step, s.LinearVelocity.Y*c.step),
			AngularVel: s.AngularVelocity * c.step,
		}
	}
}
